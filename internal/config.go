package internal

import "time"

type Config struct {
	BotToken        string        `env:"BOT_TOKEN,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BufferSize      int           `env:"BUFFER_SIZE,default=64"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4"`
	PollTimeout     int           `env:"POLL_TIMEOUT_SECONDS,default=30"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=1m"`
	NewsAPIKey      string        `env:"NEWS_API_KEY"`
	BroadcastCron   string        `env:"BROADCAST_CRON,default=0 2 * * *"`
	BroadcastChatID *int64        `env:"BROADCAST_CHAT_ID"`
}
