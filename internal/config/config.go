package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings" // strings splits comma-separated values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations and costs.
type Config struct {
    Env         string   // application environment (e.g. "dev", "prod")
    Port        string   // HTTP port to listen on
    DBUser      string   // database username
    DBPass      string   // database password (optional)
    DBHost      string   // database host address
    DBPort      string   // database port number
    DBName      string   // database name
    JWTSecret   string   // secret used to sign session tokens
    TokenTTLMin int      // session token time-to-live in minutes
    BcryptCost  int      // bcrypt cost for password hashing
    CORSOrigins []string // origins allowed to send credentialed requests
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:         must("APP_ENV"),      // environment (dev/test/prod)
        Port:        must("APP_PORT"),     // port to bind the HTTP server
        DBUser:      must("DB_USER"),      // database user
        DBPass:      os.Getenv("DB_PASS"), // database password (empty allowed)
        DBHost:      must("DB_HOST"),      // database host
        DBPort:      must("DB_PORT"),      // database port
        DBName:      must("DB_NAME"),      // database name
        JWTSecret:   must("JWT_SECRET"),   // secret used for signing session tokens
        TokenTTLMin: intOr("TOKEN_TTL_MIN", 60),
        BcryptCost:  intOr("BCRYPT_COST", 10),
        CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
    }
}

// CookieSecure reports whether the session cookie must carry the Secure flag.
// Local development runs over plain HTTP; every other environment is assumed
// to sit behind TLS and serve a cross-site frontend.
func (c Config) CookieSecure() bool { return c.Env != "dev" }

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// intOr converts an optional environment variable into an integer, falling
// back to def when the variable is unset.  A value that is set but not a
// valid integer is a configuration mistake and halts startup.
func intOr(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// splitOrigins parses a comma-separated origin list.  An empty variable
// yields the local Vite dev server, mirroring the frontend this API serves.
func splitOrigins(s string) []string {
    if strings.TrimSpace(s) == "" {
        return []string{"http://localhost:5173"}
    }
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
