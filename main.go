package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/reusedev/ghibli-detox/config"
	"github.com/reusedev/ghibli-detox/internal/components/mysql"
	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/modules/logs"
	"github.com/reusedev/ghibli-detox/internal/modules/model"
	"github.com/reusedev/ghibli-detox/internal/modules/ratelimit"
	"github.com/reusedev/ghibli-detox/internal/modules/storage/ali"
	"github.com/reusedev/ghibli-detox/internal/service/http"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	_ = godotenv.Load()
	config.Init(configPath)
	logs.InitLogger()
	mysql.CreateDataBase(config.GConfig.MySQL)
	mysql.InitMySQL(config.GConfig.MySQL)
	mysql.DB.AutoMigrate(&model.User{}, &model.Image{})
	ali.InitOSS(config.GConfig.AliOss)
	limiter := ratelimit.NewMemory(config.GConfig.DailyQuota, consts.QuotaWindow)
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		os.Exit(0)
	}(osSignal)
	http.Serve(httpPort, limiter)
}
