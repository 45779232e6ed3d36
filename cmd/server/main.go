package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/palemoky/tower-race/internal/config"
	"github.com/palemoky/tower-race/internal/logger"
	"github.com/palemoky/tower-race/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("⚠️ 日志初始化失败: %v", err)
	} else {
		log.Printf("📝 日志文件: %s", logger.GetLogPath())
	}
	defer logger.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("⚠️ 加载配置失败 (%v)，使用默认配置", err)
		cfg = config.Default()
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("❌ 服务器初始化失败: %v", err)
	}

	// 优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("🛑 收到退出信号，正在关闭服务器...")
		srv.Shutdown()
		os.Exit(0)
	}()

	if err := srv.Start(); err != nil {
		log.Fatalf("❌ 服务器启动失败: %v", err)
	}
}
