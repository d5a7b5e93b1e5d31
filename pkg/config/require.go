package config

import "log"

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return cfg
}

// MustDatabaseURL is for tools that only need the database.
func MustDatabaseURL() string {
	var c struct {
		DatabaseURL string `env:"DATABASE_URL,required"`
	}
	if err := parse(&c); err != nil {
		log.Fatalf("missing required env DATABASE_URL: %v", err)
	}
	return c.DatabaseURL
}

// KafkaBrokers reads only KAFKA_BROKERS. Empty means events are not published.
func KafkaBrokers() ([]string, error) {
	var c struct {
		KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	}
	if err := parse(&c); err != nil {
		return nil, err
	}
	return c.KafkaBrokers, nil
}
