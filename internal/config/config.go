package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strconv"
    "time"

    "github.com/joho/godotenv"
)

const DefaultPath = "marknote.config.json"

// Config is the editor's settings file: {"stateDir": "...", "colors": [...], ...}.
// Every field has a default, so a missing file is not an error.
type Config struct {
    StateDir      string       `json:"stateDir,omitempty"`
    LogFile       string       `json:"logFile,omitempty"` // defaults to <stateDir>/marknote.log
    Debug         bool         `json:"debug,omitempty"`
    NoColor       bool         `json:"noColor,omitempty"`
    SplashDelayMS int          `json:"splashDelayMs,omitempty"`
    Colors        []NamedColor `json:"colors,omitempty"` // color picker entries
    Sizes         []NamedSize  `json:"sizes,omitempty"`  // size picker entries
}

type NamedColor struct {
    Name string `json:"name"`
    Hex  string `json:"hex"`
}

type NamedSize struct {
    Name  string `json:"name"`
    Value int    `json:"value"`
}

func Default() *Config {
    return &Config{
        StateDir:      ".marknote",
        SplashDelayMS: 2000,
        Colors: []NamedColor{
            {"Black", "#000000"},
            {"Red", "#FF0000"},
            {"Blue", "#0000FF"},
            {"Green", "#008000"},
            {"Orange", "#FFA500"},
            {"Purple", "#800080"},
            {"White", "#FFFFFF"},
        },
        Sizes: []NamedSize{
            {"Small", 12},
            {"Normal", 16},
            {"Medium", 20},
            {"Large", 24},
            {"Huge", 30},
        },
    }
}

// Load reads path over the defaults, then applies .env and environment
// overrides.
func Load(path string) (*Config, error) {
    c := Default()
    data, err := os.ReadFile(path)
    switch {
    case errors.Is(err, os.ErrNotExist):
    case err != nil:
        return nil, fmt.Errorf("read config: %w", err)
    default:
        if err := json.Unmarshal(data, c); err != nil {
            return nil, fmt.Errorf("parse config JSON: %w", err)
        }
    }
    // .env is optional
    _ = godotenv.Load()
    applyEnv(c)
    if len(c.Colors) == 0 {
        c.Colors = Default().Colors
    }
    if len(c.Sizes) == 0 {
        c.Sizes = Default().Sizes
    }
    return c, nil
}

func applyEnv(c *Config) {
    if v, ok := os.LookupEnv("MARKNOTE_STATE_DIR"); ok && v != "" {
        c.StateDir = v
    }
    if v, ok := os.LookupEnv("MARKNOTE_LOG_FILE"); ok && v != "" {
        c.LogFile = v
    }
    if v, ok := os.LookupEnv("MARKNOTE_DEBUG"); ok {
        if b, err := strconv.ParseBool(v); err == nil {
            c.Debug = b
        }
    }
    if v, ok := os.LookupEnv("MARKNOTE_SPLASH_MS"); ok {
        if n, err := strconv.Atoi(v); err == nil && n >= 0 {
            c.SplashDelayMS = n
        }
    }
    if os.Getenv("NO_COLOR") != "" {
        c.NoColor = true
    }
}

func (c *Config) LogPath() string {
    if c.LogFile != "" {
        return c.LogFile
    }
    return filepath.Join(c.StateDir, "marknote.log")
}

func (c *Config) DocumentsPath() string {
    return filepath.Join(c.StateDir, "documents.json")
}

func (c *Config) SplashDelay() time.Duration {
    return time.Duration(c.SplashDelayMS) * time.Millisecond
}

func Save(path string, c *Config) error {
    data, err := json.MarshalIndent(c, "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}
