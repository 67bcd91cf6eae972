package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"

	// EnvProduction is the deployment name that turns on secure cookies.
	EnvProduction = "production"

	defaultSessionCookieName   = "auth_session"
	defaultSessionLifetime     = 30 * 24 * time.Hour
	defaultSessionCleanupEvery = time.Hour
	defaultTranslateTimeout    = 10 * time.Second
	defaultTranslateCacheTTL   = 24 * time.Hour
	defaultDeepLEndpoint       = "https://api-free.deepl.com/v2/translate"
	defaultOpenAIModel         = "gpt-4o-mini"
	defaultI18nBucketURL       = "locales"
	defaultWorkerPort          = 8081
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Migrate applies the embedded goose migrations on start when true.
	Migrate bool `json:"migrate" yaml:"migrate"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Site *SiteConfig `json:"site" yaml:"site"`

	I18n *I18nConfig `json:"i18n" yaml:"i18n"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Email configuration for the send-email proxy and the mail worker
	Email *EmailConfig `json:"email" yaml:"email"`

	// PubSub configuration for queued email delivery
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the push-subscription worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Translate *TranslateConfig `json:"translate" yaml:"translate"`

	// Redis backs the translation cache; an empty address disables it
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines the session cookie and lifetime settings
type SessionConfig struct {
	CookieName      string        `json:"cookieName" yaml:"cookieName"`
	Lifetime        time.Duration `json:"lifetime" yaml:"lifetime"`
	CleanupInterval time.Duration `json:"cleanupInterval" yaml:"cleanupInterval"`
}

// SiteConfig defines public site settings and the guarded area
type SiteConfig struct {
	Name            string `json:"name" yaml:"name"`
	BaseURL         string `json:"baseUrl" yaml:"baseUrl"`
	ProtectedPrefix string `json:"protectedPrefix" yaml:"protectedPrefix"`
	LoginPath       string `json:"loginPath" yaml:"loginPath"`
}

// I18nConfig defines where translation bundles live and which languages are served
type I18nConfig struct {
	// BucketURL is a gocloud.dev blob URL (file:///..., mem://) or a plain directory path
	BucketURL string   `json:"bucketUrl" yaml:"bucketUrl"`
	Default   string   `json:"default" yaml:"default"`
	Supported []string `json:"supported" yaml:"supported"`
}

// AuthConfig defines credential settings
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// EmailConfig defines outbound email settings
type EmailConfig struct {
	// Provider is "postmark" or "log"
	Provider string `json:"provider" yaml:"provider"`

	// Delivery is "direct" (send in request) or "queue" (publish for the mail worker)
	Delivery string `json:"delivery" yaml:"delivery"`

	ServerToken   string `json:"serverToken" yaml:"serverToken"`
	AccountToken  string `json:"accountToken" yaml:"accountToken"`
	From          string `json:"from" yaml:"from"`
	ReplyTo       string `json:"replyTo" yaml:"replyTo"`
	TestRecipient string `json:"testRecipient" yaml:"testRecipient"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push worker server
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Audience expected in the push OIDC token
	Audience string `json:"audience" yaml:"audience"`

	// SkipVerify disables OIDC verification for local pushes
	SkipVerify bool `json:"skipVerify" yaml:"skipVerify"`
}

// TranslateConfig defines the translation proxy
type TranslateConfig struct {
	// Provider is "deepl", "openai" or empty (proxy disabled)
	Provider      string        `json:"provider" yaml:"provider"`
	DeepLAPIKey   string        `json:"deeplApiKey" yaml:"deeplApiKey"`
	DeepLEndpoint string        `json:"deeplEndpoint" yaml:"deeplEndpoint"`
	OpenAIAPIKey  string        `json:"openaiApiKey" yaml:"openaiApiKey"`
	OpenAIModel   string        `json:"openaiModel" yaml:"openaiModel"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL      time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// IsProduction reports whether the service runs in the production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables win over the file.
	// Example: SESSION_COOKIENAME -> session.cookieName
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env (when present), then config.yaml, then environment overrides.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.Lifetime <= 0 {
		cfg.Session.Lifetime = defaultSessionLifetime
	}
	if cfg.Session.CleanupInterval <= 0 {
		cfg.Session.CleanupInterval = defaultSessionCleanupEvery
	}

	if cfg.Site == nil {
		cfg.Site = &SiteConfig{}
	}
	if cfg.Site.Name == "" {
		cfg.Site.Name = "Koostory"
	}
	if cfg.Site.ProtectedPrefix == "" {
		cfg.Site.ProtectedPrefix = "/admin"
	}
	if cfg.Site.LoginPath == "" {
		cfg.Site.LoginPath = "/login"
	}

	if cfg.I18n == nil {
		cfg.I18n = &I18nConfig{}
	}
	if cfg.I18n.BucketURL == "" {
		cfg.I18n.BucketURL = defaultI18nBucketURL
	}
	if cfg.I18n.Default == "" {
		cfg.I18n.Default = "en"
	}
	if len(cfg.I18n.Supported) == 0 {
		cfg.I18n.Supported = []string{"en", "ko"}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Email == nil {
		cfg.Email = &EmailConfig{}
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "log"
	}
	if cfg.Email.Delivery == "" {
		cfg.Email.Delivery = "direct"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = defaultWorkerPort
	}

	if cfg.Translate == nil {
		cfg.Translate = &TranslateConfig{}
	}
	if cfg.Translate.DeepLEndpoint == "" {
		cfg.Translate.DeepLEndpoint = defaultDeepLEndpoint
	}
	if cfg.Translate.OpenAIModel == "" {
		cfg.Translate.OpenAIModel = defaultOpenAIModel
	}
	if cfg.Translate.Timeout <= 0 {
		cfg.Translate.Timeout = defaultTranslateTimeout
	}
	if cfg.Translate.CacheTTL <= 0 {
		cfg.Translate.CacheTTL = defaultTranslateCacheTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
