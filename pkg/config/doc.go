// Package config loads configuration structs from environment variables
// using `env` struct tags, with optional .env file support for local
// development.
//
//	type AppConfig struct {
//	    Session session.Config
//	    Redis   redis.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
package config
