package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/sportai/internal/config"
	"github.com/2beens/sportai/internal/logging"
	"github.com/2beens/sportai/internal/posture"
	"github.com/2beens/sportai/internal/posture/render"
	"github.com/2beens/sportai/internal/posture/sensor"
	"github.com/2beens/sportai/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	sensorFile := flag.String("sensor-file", "", "pose frames file, overrides the configured sensor")
	snapshotPath := flag.String("snapshot", "", "write the last annotated frame as JPEG to this path on exit")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	postureCfg := cfg.Posture
	if *sensorFile != "" {
		postureCfg.SensorType = "file"
		postureCfg.SensorFile = *sensorFile
	}

	var frameSensor posture.Sensor
	switch postureCfg.SensorType {
	case "websocket":
		frameSensor = sensor.NewWebsocketSensor(postureCfg.SensorURL, nil)
	default:
		frameSensor = sensor.NewFileSensor(postureCfg.SensorFile, postureCfg.SensorFPS)
	}

	var player posture.Player = posture.LogPlayer{}
	if len(postureCfg.AlarmCommand) > 0 {
		player, err = posture.NewCommandPlayer(postureCfg.AlarmCommand, postureCfg.AlarmSoundPath, postureCfg.AlarmTimeout)
		if err != nil {
			log.Fatalf("alarm player: %s", err)
		}
	}

	mode, err := posture.ParseMode(postureCfg.DefaultMode)
	if err != nil {
		log.Fatalf("default mode: %s", err)
	}

	metricsManager := metrics.NewManager("sportai", "posture", prometheus.NewRegistry())
	dispatcher := posture.NewAlarmDispatcher(player, nil, postureCfg.AlarmQueueSize, metricsManager)
	overlay := render.NewOverlay(0)
	monitor := posture.NewMonitor(frameSensor, dispatcher, mode, metricsManager, overlay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := monitor.Start(ctx); err != nil {
		log.Fatalf("start form monitor: %s", err)
	}

	fmt.Println("keys: [r] hand raise, [c] hand curl, [q]/[ESC] quit (confirm with enter)")

	quit := make(chan struct{})
	go func() {
		err := posture.ReadKeys(os.Stdin, monitor)
		switch {
		case err == nil:
			close(quit)
		case errors.Is(err, io.EOF):
			log.Infoln("stdin closed, keyboard control disabled")
		default:
			log.Errorf("read keys: %s, keyboard control disabled", err)
		}
	}()

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

wait:
	for {
		select {
		case <-quit:
			log.Infoln("quit key pressed")
			break wait
		case sig := <-chOsInterrupt:
			log.Warnf("signal [%s] received", sig)
			break wait
		case <-ticker.C:
			if !monitor.IsRunning() {
				log.Infoln("form monitor stopped")
				break wait
			}
		}
	}

	monitor.Stop()
	dispatcher.Close()

	status := monitor.Status()
	log.Infof("frames processed: %d, alarms fired: %d", status.FramesProcessed, status.AlarmsFired)

	if *snapshotPath != "" {
		if frame, ok := overlay.LatestJPEG(); ok {
			if err := os.WriteFile(*snapshotPath, frame, 0o644); err != nil {
				log.Errorf("write snapshot: %s", err)
			}
		}
	}
}
