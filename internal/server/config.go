package server

import (
	"errors"
	"fmt"

	"github.com/goto/salt/config"
	"github.com/goto/spotlight/domain"
	"github.com/goto/spotlight/internal/store"
	"github.com/goto/spotlight/plugins/discussion"
	"github.com/goto/spotlight/plugins/notifiers"
	"github.com/goto/spotlight/plugins/poststore"
	"github.com/goto/spotlight/plugins/storage/s3"
)

// Auth names the trusted headers the upstream auth layer resolves the actor
// into.
type Auth struct {
	IDHeaderKey   string `mapstructure:"id_header_key" default:"X-Auth-Id"`
	RoleHeaderKey string `mapstructure:"role_header_key" default:"X-Auth-Role"`
}

type Config struct {
	Port       int                   `mapstructure:"port" default:"8080"`
	Auth       Auth                  `mapstructure:"auth"`
	LogLevel   string                `mapstructure:"log_level" default:"info"`
	DB         store.Config          `mapstructure:"db"`
	Notifier   notifiers.Config      `mapstructure:"notifier"`
	Discussion discussion.Config     `mapstructure:"discussion"`
	PostStore  poststore.Config      `mapstructure:"post_store"`
	Storage    s3.Config             `mapstructure:"storage"`
	Feedback   domain.FeedbackConfig `mapstructure:"feedback"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			fmt.Println(err)
			return cfg, nil
		}
		return Config{}, err
	}

	return cfg, nil
}
