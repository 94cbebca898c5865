package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugHost       string
		Host            string
		ShutdownTimeout time.Duration
	}

	BackendConfig struct {
		URL     string
		Timeout time.Duration
	}

	NotifyConfig struct {
		Announcements bool
		Recipients    []mail.Address
	}

	Config struct {
		Env                    string
		Build                  string
		Debug                  bool
		TestMode               bool
		AppName                string
		WorkDir                string
		SecretKey              string
		SessionExpirationDelta time.Duration
		RollbarToken           string
		SendgridApiKey         string
		defaultFromEmail       string
		portalURL              string

		Server  ServerConfig
		Backend BackendConfig
		Notify  NotifyConfig
	}
)

// NewConfig reads the configuration from viper defaults, the environment and
// the optional `config/.env.<env>` file, in that order of increasing precedence.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("build", "develop")
	conf.SetDefault("appName", "FYP Portal")
	conf.SetDefault("secretKey", "w3a!n5x+0qv9#dz&uo6h2(h!x)#*c2(#yg4h^$ceg-fyp")
	conf.SetDefault("sessionExpirationDelta", 12*time.Hour)
	conf.SetDefault("defaultFromEmail", "FYP Portal <noreply@localhost>")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("portalUrl", "http://localhost:8000")
	conf.SetDefault("fypApiUrl", "http://localhost:3003")
	conf.SetDefault("fypApiTimeout", 15*time.Second)
	conf.SetDefault("serverAddress", ":8000")
	conf.SetDefault("serverDebugHost", ":4000")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("notifyAnnouncements", false)
	conf.SetDefault("notifyRecipients", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	if env == "TEST" {
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	workDir := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()
	_ = conf.BindEnv("fypApiUrl", "FYP_API_URL")

	return &Config{
		Env:                    env,
		Build:                  conf.GetString("build"),
		Debug:                  conf.GetBool("debug"),
		TestMode:               conf.GetBool("testMode"),
		AppName:                conf.GetString("appName"),
		WorkDir:                workDir,
		SecretKey:              conf.GetString("secretKey"),
		SessionExpirationDelta: conf.GetDuration("sessionExpirationDelta"),
		RollbarToken:           conf.GetString("rollbarToken"),
		SendgridApiKey:         conf.GetString("sendgridApiKey"),
		defaultFromEmail:       conf.GetString("defaultFromEmail"),
		portalURL:              strings.TrimRight(conf.GetString("portalUrl"), "/"),
		Server: ServerConfig{
			Address:         conf.GetString("serverAddress"),
			DebugHost:       conf.GetString("serverDebugHost"),
			Host:            conf.GetString("serverHost"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Backend: BackendConfig{
			URL:     strings.TrimRight(conf.GetString("fypApiUrl"), "/"),
			Timeout: conf.GetDuration("fypApiTimeout"),
		},
		Notify: NotifyConfig{
			Announcements: conf.GetBool("notifyAnnouncements"),
			Recipients:    parseAddressList(conf.GetString("notifyRecipients")),
		},
	}
}

// DefaultFromEmail returns the parsed sender address, falling back to a bare noreply address.
func (c *Config) DefaultFromEmail() mail.Address {
	if addr, err := mail.ParseAddress(c.defaultFromEmail); err == nil {
		return *addr
	}
	return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
}

// PortalURL is the public base URL of the portal, used in outgoing emails.
func (c *Config) PortalURL() string { return c.portalURL }

func parseAddressList(s string) []mail.Address {
	if CleanString(s) == "" {
		return nil
	}
	list, err := mail.ParseAddressList(s)
	if err != nil {
		log.Printf("config.parseAddressList(%q): %v", s, err)
		return nil
	}
	addrs := make([]mail.Address, 0, len(list))
	for _, a := range list {
		addrs = append(addrs, *a)
	}
	return addrs
}
