// Command token mints an operator JWT for the protected log listing.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/artem13815/members/pkg/config"
	"github.com/artem13815/members/pkg/security/jwt"
)

func main() {
	_ = godotenv.Load()
	def := config.Defaults()

	subject := flag.String("subject", "", "operator identifier (required)")
	scopes := flag.String("scopes", jwt.ScopeLogsRead, "comma separated scopes")
	ttl := flag.Duration("ttl", time.Duration(def.JWTTTLMinutes)*time.Minute, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "token: JWT_SECRET is not set")
		os.Exit(2)
	}
	issuer := envOr("JWT_ISSUER", def.JWTIssuer)

	var granted []string
	for _, s := range strings.Split(*scopes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			granted = append(granted, s)
		}
	}

	token, err := jwt.NewGenerator(secret, issuer, *ttl).Generate(*subject, granted...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(2)
	}
	fmt.Println(token)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
