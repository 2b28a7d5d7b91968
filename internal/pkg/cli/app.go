package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/giantswarm/storage-account-provisioner/internal/pkg/flags"
	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision"
	"github.com/giantswarm/storage-account-provisioner/internal/pkg/service/provision/cloud/azure"
)

const createdByTag = "storage-account-provisioner"

// NewApp builds the command line application. The verified storage account
// name is the only thing written to out, status and errors go to the log
// stream on errOut.
func NewApp(out io.Writer, errOut io.Writer) *cli.App {
	var (
		params   flags.Provision
		logLevel string
	)

	return &cli.App{
		Name:      "storage-account-provisioner",
		Usage:     "ensure a resource group and a project storage account exist, then print the account name",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "subscription-id",
				Usage:       "target subscription, falls back to AZURE_SUBSCRIPTION_ID / ARM_SUBSCRIPTION_ID",
				Destination: &params.SubscriptionID,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "project name the storage account name is derived from",
				Required:    true,
				Destination: &params.ProjectName,
			},
			&cli.StringFlag{
				Name:        "resource-group-name",
				Usage:       "resource group to ensure",
				Required:    true,
				Destination: &params.ResourceGroupName,
			},
			&cli.StringFlag{
				Name:        "location",
				Usage:       "region used when creating the resource group and the storage account",
				Required:    true,
				Destination: &params.Location,
			},
			&cli.StringFlag{
				Name:        "sku",
				Usage:       "replication sku of the storage account",
				Value:       azure.DefaultSKU,
				Destination: &params.SKU,
			},
			&cli.StringFlag{
				Name:        "kind",
				Usage:       "kind of the storage account",
				Value:       azure.DefaultKind,
				Destination: &params.Kind,
			},
			&cli.StringFlag{
				Name:        "identity-type",
				Usage:       "ambient identity type (UserAssignedMSI, WorkloadIdentity or empty for the default chain)",
				Destination: &params.IdentityType,
			},
			&cli.StringFlag{
				Name:        "client-id",
				Usage:       "client id of the identity, when identity-type needs one",
				Destination: &params.ClientID,
			},
			&cli.StringFlag{
				Name:        "tenant-id",
				Usage:       "tenant id of the identity, when identity-type needs one",
				Destination: &params.TenantID,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger(errOut, logLevel)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			logger = logger.WithValues("run", uuid.New().String())

			accountName, err := run(c.Context, logger, params)
			if err != nil {
				logger.Error(err, "Provisioning failed")
				return cli.Exit("", 1)
			}

			fmt.Fprintln(out, accountName)
			return nil
		},
	}
}

func run(ctx context.Context, logger logr.Logger, params flags.Provision) (string, error) {
	if params.SubscriptionID == "" {
		if subscriptionID, ok := azure.SubscriptionIDFromEnvironment(); ok {
			logger.Info("Using subscription id from environment")
			params.SubscriptionID = subscriptionID
		}
	}

	if err := params.Validate(); err != nil {
		return "", err
	}
	if _, err := azure.ParseSKU(params.SKU); err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := azure.ParseKind(params.Kind); err != nil {
		return "", errors.WithStack(err)
	}

	credential, err := azure.NewTokenCredential(azure.Identity{
		Type:     params.IdentityType,
		ClientID: params.ClientID,
		TenantID: params.TenantID,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	service, err := azure.NewProvisionService(params.SubscriptionID, credential)
	if err != nil {
		return "", errors.WithStack(err)
	}

	provisioner := provision.NewProvisioner(service.ResourceGroups, service.StorageAccounts, logger)
	result, err := provisioner.Provision(ctx, provision.Request{
		ProjectName:       params.ProjectName,
		ResourceGroupName: params.ResourceGroupName,
		Location:          params.Location,
		SKU:               params.SKU,
		Kind:              params.Kind,
		Tags:              map[string]string{"created-by": createdByTag},
	})
	if err != nil {
		return "", err
	}

	return result.StorageAccountName, nil
}

func newLogger(errOut io.Writer, level string) (logr.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Logger{}, errors.Wrapf(err, "unknown log level %s", level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(errOut), zapLevel)
	return zapr.NewLogger(zap.New(core)), nil
}
