package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InventoryPolicy carries display/alerting policy for the inventory UI.
// It lives in an optional tillpoint.yml so event organisers can tune it
// without rebuilding the binary.
type InventoryPolicy struct {
	// LowStockThreshold marks active items at or below this stock level
	// as running low.
	LowStockThreshold int `mapstructure:"lowStockThreshold"`
}

func DefaultInventoryPolicy() InventoryPolicy {
	return InventoryPolicy{
		LowStockThreshold: 5,
	}
}

type PolicyHolder struct {
	current atomic.Value // holds InventoryPolicy
}

func NewPolicyHolder(cfg Config) (*PolicyHolder, error) {
	v := viper.New()

	v.SetConfigName("tillpoint")
	v.SetConfigType("yml")
	v.AddConfigPath(cfg.PolicyPath)
	v.AddConfigPath(".")

	v.SetEnvPrefix("TILLPOINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultInventoryPolicy()
		v.SetDefault("inventory.lowStockThreshold", defaults.LowStockThreshold)
	}

	var policy InventoryPolicy
	if err := v.UnmarshalKey("inventory", &policy); err != nil {
		return nil, err
	}
	if err := validateInventoryPolicy(policy); err != nil {
		return nil, err
	}

	holder := &PolicyHolder{}
	holder.current.Store(policy)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InventoryPolicy
		if err := v.UnmarshalKey("inventory", &updated); err != nil {
			log.Printf("[policy] reload failed: %v", err)
			return
		}
		if err := validateInventoryPolicy(updated); err != nil {
			log.Printf("[policy] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[policy] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *PolicyHolder) Get() InventoryPolicy {
	return h.current.Load().(InventoryPolicy)
}

// NewStaticPolicyHolder builds a holder with a fixed policy, for tests and
// callers that do not want file watching.
func NewStaticPolicyHolder(policy InventoryPolicy) *PolicyHolder {
	holder := &PolicyHolder{}
	holder.current.Store(policy)
	return holder
}

func validateInventoryPolicy(policy InventoryPolicy) error {
	if policy.LowStockThreshold < 0 {
		return errors.New("inventory.lowStockThreshold cannot be negative")
	}
	return nil
}
