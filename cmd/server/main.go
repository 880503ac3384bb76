package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/wizinfantry/SOLANA-WALLET-API/internal/api"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/client"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/config"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/handler"
	"github.com/wizinfantry/SOLANA-WALLET-API/internal/wallet"

	_ "github.com/wizinfantry/SOLANA-WALLET-API/docs"
)

// @title        Solana Wallet API
// @version      1.0.0
// @description  Stateless REST gateway over the Solana RPC API: keypair
// @description  generation and recovery, SOL and SPL balances and transfers.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("error parsing config: %v", err))
	}

	l, err := api.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}

	commitment, err := client.ParseCommitment(cfg.Commitment)
	if err != nil {
		panic(err)
	}

	ledger := client.NewSolanaClient(cfg.SolanaRPCURL, commitment, l)
	service := wallet.NewService(ledger, l)
	h := handler.NewWalletHandler(service, client.NewCoinGeckoClient(), cfg.RequestTimeoutDuration())

	srv := api.NewServer(cfg.Port, api.NewRouter(h, l), l)
	srv.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	sig := <-sigChan
	srv.Stop(sig)
}
