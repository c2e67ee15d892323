package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/vfg2006/ad-report-analyzer/internal/config"
	"github.com/vfg2006/ad-report-analyzer/internal/domain"
	"github.com/vfg2006/ad-report-analyzer/internal/usecases/authenticating"
)

// Emite um token assinado com AUTH_SECRET para os clientes da API
func main() {
	subject := flag.StringP("subject", "s", "", "identificação do cliente (obrigatório)")
	role := flag.StringP("role", "r", domain.RoleViewer, "papel do token: viewer ou operator")
	ttl := flag.DurationP("ttl", "t", 30*24*time.Hour, "validade do token")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *role != domain.RoleViewer && *role != domain.RoleOperator {
		logrus.Fatalf("Papel inválido: %s", *role)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Fatal("AUTH_SECRET não configurado")
	}

	token, err := authenticator.IssueToken(*subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao emitir token")
	}

	fmt.Println(token)
}
