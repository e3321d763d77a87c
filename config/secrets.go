package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/rs/zerolog/log"
)

// ParameterGetter is the part of the SSM client used to resolve secrets.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterGetter builds an SSM client from the default AWS credential chain.
func NewParameterGetter(ctx context.Context, region string) (ParameterGetter, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ResolveSecret returns config[key] when set. Otherwise, if config[key+"_SSM_PARAM"]
// names a parameter, the decrypted parameter value is fetched and stored back into config.
func ResolveSecret(ctx context.Context, config map[string]string, key string, getter ParameterGetter) (string, error) {
	if v := GetString(config, key, ""); v != "" {
		return v, nil
	}

	param := GetString(config, key+"_SSM_PARAM", "")
	if param == "" {
		return "", fmt.Errorf("%w: %s", errs.ErrConfigMissing, key)
	}
	if getter == nil {
		return "", fmt.Errorf("%w: no parameter store client for %s", errs.ErrConfigInvalid, key)
	}

	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(param),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("fetch parameter %s: %w", param, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("%w: parameter %s is empty", errs.ErrConfigInvalid, param)
	}

	log.Info().Str("key", key).Str("parameter", param).Msg("Resolved secret from parameter store")
	value := aws.ToString(out.Parameter.Value)
	config[key] = value
	return value, nil
}
