// hwpaneld samples hardware sensors once per second, streams CSV records to
// the panel over the serial link, and serves the same snapshots over HTTP
// and WebSocket.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hwpanel/internal/config"
	"hwpanel/internal/routes"
	"hwpanel/internal/services"
	"hwpanel/internal/transport"
)

func main() {
	configPath := flag.String("config", "hwpanel.yaml", "path to the YAML config")
	serialPort := flag.String("serial", "", "serial port override (COM3, /dev/ttyACM0)")
	printToken := flag.Bool("print-token", false, "generate an API token and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *serialPort != "" {
		cfg.Serial.Port = *serialPort
	}

	services.InitAuthService("", 0)

	if *printToken {
		hostname, _ := os.Hostname()
		token, err := services.GenerateToken(hostname)
		if err != nil {
			log.Fatalf("generate token: %v", err)
		}
		fmt.Println(token)
		return
	}

	services.InitWebSocketHub()

	var sink io.WriteCloser
	if cfg.Serial.Port != "" {
		sink, err = transport.OpenSerial(cfg.Serial.Port, cfg.Serial.Baud)
		if err != nil {
			if ports := transport.ListPorts(); len(ports) > 0 {
				log.Printf("[SERIAL] Available ports: %s", strings.Join(ports, ", "))
			}
			log.Fatalf("[SERIAL] %v", err)
		}
		defer sink.Close()
		log.Printf("[SERIAL] Connected to panel on %s @ %d baud", cfg.Serial.Port, cfg.Serial.Baud)
	} else {
		log.Printf("[SERIAL] No port configured; serving API only")
	}

	// Collect and publish every second, matching the wire contract.
	go collectLoop(sink)

	r := gin.Default()
	routes.RegisterRoutes(r, cfg.HTTP.RequireAuth)

	log.Printf("[HTTP] Listening on %s", cfg.HTTP.Listen)
	if err := r.Run(cfg.HTTP.Listen); err != nil {
		log.Fatalf("[HTTP] %v", err)
	}
}

func collectLoop(sink io.Writer) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		snap := services.CollectSnapshot(now)
		services.PublishSnapshot(snap)

		if sink == nil {
			continue
		}
		if _, err := io.WriteString(sink, transport.FormatLine(snap)); err != nil {
			// The panel may be unplugged; keep collecting and let the
			// next write try again.
			log.Printf("[SERIAL] Write failed: %v", err)
		}
	}
}
