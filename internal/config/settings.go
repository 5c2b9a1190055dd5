package config

import (
	"strings"

	"ecotech/internal/domain/entities"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

type (
	ServiceConfig struct {
		App       App       `json:"app"`
		HTTP      HTTP      `json:"http"`
		Logging   Logging   `json:"logging"`
		Storage   Storage   `json:"storage"`
		Treatment Treatment `json:"treatment"`
		Payments  Payments  `json:"payments"`
		Metrics   Metrics   `json:"metrics"`
	}

	App struct {
		ServiceName string `envconfig:"APP_SERVICE_NAME" default:"ecotech" json:"service_name"`
		APIVersion  string `envconfig:"APP_API_VERSION" default:"v1" json:"api_version"`
	}

	HTTP struct {
		Port    uint   `envconfig:"HTTP_PORT" default:"8080" json:"port"`
		GinMode string `envconfig:"GIN_MODE" default:"debug" json:"gin_mode"`
	}

	Logging struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format string `envconfig:"LOG_FORMAT" default:"console" json:"format"`
	}

	Storage struct {
		Driver   string   `envconfig:"STORAGE_DRIVER" default:"memory" json:"driver"`
		DynamoDB DynamoDB `json:"dynamodb"`
	}

	DynamoDB struct {
		Region          string `envconfig:"AWS_REGION" default:"us-east-1" json:"region"`
		AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local" json:"-"`
		SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local" json:"-"`
		Endpoint        string `envconfig:"DYNAMODB_ENDPOINT" default:"" json:"endpoint,omitempty"`
		ReportsTable    string `envconfig:"REPORTS_TABLE" default:"reports" json:"reports_table"`
		PaymentsTable   string `envconfig:"PAYMENTS_TABLE" default:"payments" json:"payments_table"`
	}

	Treatment struct {
		CostPolicy string `envconfig:"TREATMENT_COST_POLICY" default:"flat" json:"cost_policy"`
	}

	Payments struct {
		AccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN" default:"" json:"-"`
		TestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL" default:"" json:"test_payer_email,omitempty"`
		TestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID" default:"" json:"test_payer_user_id,omitempty"`
		Mock            string `envconfig:"PAYMENT_GATEWAY_MOCK" default:"" json:"mock"`
		LegacyMock      string `envconfig:"MERCADOPAGO_MOCK" default:"" json:"-"`
	}

	Metrics struct {
		Enabled bool   `envconfig:"METRICS_ENABLED" default:"true" json:"enabled"`
		Path    string `envconfig:"METRICS_PATH" default:"/metrics" json:"path"`
	}
)

// UsesDynamoDB reports whether reports and payments are stored in DynamoDB.
func (c *ServiceConfig) UsesDynamoDB() bool {
	return strings.EqualFold(strings.TrimSpace(c.Storage.Driver), StorageDynamoDB)
}

// CostPolicy is the treatment pricing policy; Init has already validated it.
func (c *ServiceConfig) CostPolicy() entities.CostPolicy {
	p, err := entities.ParseCostPolicy(c.Treatment.CostPolicy)
	if err != nil {
		return entities.CostPolicyFlat
	}
	return p
}

// MockEnabled reports whether the payment gateway must fabricate approvals.
func (p Payments) MockEnabled() bool {
	for _, v := range []string{p.Mock, p.LegacyMock} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
