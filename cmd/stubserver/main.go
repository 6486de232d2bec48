package main

import (
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/comanda/stubserver"
)

const shutdownTimeout = 10 * time.Second

func main() {
	addr := flag.String("addr", ":5555", "listen address")
	flag.Parse()

	secret := os.Getenv("STUB_JWT_SECRET")
	if secret == "" {
		secret = "stub-secret"
	}

	svr := stubserver.New(secret)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Printf("stub backend listening on %s", *addr)
		if err := svr.Run(*addr); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	<-done

	logrus.Println("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down cleanly")
	}
}
