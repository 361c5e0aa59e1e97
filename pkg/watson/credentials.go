package watson

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Credentials are the resolved connection settings for one service.
type Credentials struct {
	URL         string
	APIKey      string
	Username    string
	Password    string
	BearerToken string
	IAMURL      string
}

// Authenticator builds the authenticator implied by the credentials,
// preferring IAM over bearer over basic.
func (c *Credentials) Authenticator() (Authenticator, error) {
	switch {
	case c.APIKey != "":
		auth := NewIAMAuthenticator(c.APIKey)
		if c.IAMURL != "" {
			auth.SetURL(c.IAMURL)
		}
		return auth, nil
	case c.BearerToken != "":
		return &BearerAuthenticator{Token: c.BearerToken}, nil
	case c.Username != "":
		return &BasicAuthenticator{Username: c.Username, Password: c.Password}, nil
	default:
		return nil, ErrMissingCredentials
	}
}

// credential keys resolved per service, uppercased with the service
// name as prefix, e.g. ASSISTANT_APIKEY, SPEECH_TO_TEXT_URL.
var credentialKeys = []string{"url", "apikey", "username", "password", "bearer_token", "auth_url"}

// LoadCredentials resolves credentials for the named service
// ("assistant", "speech_to_text") from the process environment and,
// when present, an ibm-credentials.env file. The file location is
// taken from IBM_CREDENTIALS_FILE, falling back to the working
// directory and the user's home directory. Environment variables win
// over file entries.
func LoadCredentials(serviceName string) (*Credentials, error) {
	v := viper.New()
	v.SetConfigType("dotenv")

	if path := os.Getenv("IBM_CREDENTIALS_FILE"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("ibm-credentials")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("watson: read credentials file: %w", err)
		}
		// No file is fine; environment variables may still resolve.
	}

	prefix := strings.ToUpper(serviceName) + "_"
	for _, key := range credentialKeys {
		envKey := prefix + strings.ToUpper(key)
		if err := v.BindEnv(envKey, envKey); err != nil {
			return nil, fmt.Errorf("watson: bind env %s: %w", envKey, err)
		}
	}

	get := func(key string) string {
		return v.GetString(prefix + strings.ToUpper(key))
	}

	creds := &Credentials{
		URL:         get("url"),
		APIKey:      get("apikey"),
		Username:    get("username"),
		Password:    get("password"),
		BearerToken: get("bearer_token"),
		IAMURL:      get("auth_url"),
	}
	return creds, nil
}

// FromEnvironment is an Option that resolves the service URL and
// authenticator from the environment and ibm-credentials.env. Options
// placed after it override the resolved values.
func FromEnvironment(serviceName string) Option {
	return func(c *Config) {
		creds, err := LoadCredentials(serviceName)
		if err != nil {
			return
		}
		if creds.URL != "" {
			c.URL = creds.URL
		}
		if auth, err := creds.Authenticator(); err == nil {
			c.Authenticator = auth
		}
	}
}
