package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/habistat/habistat/api"
	"github.com/habistat/habistat/internal/opener"
	"github.com/habistat/habistat/internal/osinfo"
	"github.com/habistat/habistat/internal/platform"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "Address to serve the shell on")
	flag.Parse()

	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		log.Fatalf("Platform validation failed: %v", err)
	}

	// Assemble the shell: plugins first, then the command bridge
	shell, err := api.NewBuilder().
		Plugin(opener.New()).
		Plugin(osinfo.New()).
		Command("get_os", func() string { return string(platform.GetOS()) }).
		Build()
	if err != nil {
		log.Fatalf("Failed to build shell: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := shell.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Hand control to the run loop; this blocks until the process exits
	log.Printf("Starting habistat shell on %s", *addr)
	log.Fatal(shell.Run(*addr))
}
