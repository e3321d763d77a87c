package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/rpupo63/job-tracker-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnviron(t *testing.T) {
	c := FromEnviron([]string{"PORT=9000", "DSN=host=db user=app", "EMPTY=", "", "NOVALUE"})

	assert.Equal(t, "9000", GetString(c, "PORT", "8080"))
	assert.Equal(t, "host=db user=app", GetString(c, "DSN", ""))
	assert.Equal(t, "fallback", GetString(c, "EMPTY", "fallback"))
	assert.Equal(t, "", c["NOVALUE"])
}

func TestTypedGetters(t *testing.T) {
	c := map[string]string{
		"TIMEOUT": "30",
		"BAD_INT": "thirty",
		"ENABLED": "true",
		"ORIGINS": "https://a.example, ,https://b.example",
	}

	assert.Equal(t, 30, GetInt(c, "TIMEOUT", 5))
	assert.Equal(t, 5, GetInt(c, "BAD_INT", 5))
	assert.Equal(t, 30*time.Second, GetSeconds(c, "TIMEOUT", time.Minute))
	assert.Equal(t, time.Minute, GetSeconds(c, "MISSING", time.Minute))
	assert.True(t, GetBool(c, "ENABLED", false))
	assert.True(t, GetBool(c, "MISSING", true))
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, GetList(c, "ORIGINS"))
	assert.Nil(t, GetList(nil, "ORIGINS"))
}

type fakeParameters struct {
	value string
	err   error
	asked string
}

func (f *fakeParameters) GetParameter(_ context.Context, in *ssm.GetParameterInput, _ ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.asked = aws.ToString(in.Name)
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(f.value)}}, nil
}

func TestResolveSecret(t *testing.T) {
	ctx := context.Background()

	direct := map[string]string{"JWT_SECRET": "inline"}
	v, err := ResolveSecret(ctx, direct, "JWT_SECRET", nil)
	require.NoError(t, err)
	assert.Equal(t, "inline", v)

	fake := &fakeParameters{value: "from-ssm"}
	viaSSM := map[string]string{"JWT_SECRET_SSM_PARAM": "/tracker/jwt"}
	v, err = ResolveSecret(ctx, viaSSM, "JWT_SECRET", fake)
	require.NoError(t, err)
	assert.Equal(t, "from-ssm", v)
	assert.Equal(t, "/tracker/jwt", fake.asked)
	assert.Equal(t, "from-ssm", viaSSM["JWT_SECRET"])

	_, err = ResolveSecret(ctx, map[string]string{}, "JWT_SECRET", fake)
	assert.ErrorIs(t, err, errs.ErrConfigMissing)

	_, err = ResolveSecret(ctx, map[string]string{"JWT_SECRET_SSM_PARAM": "/x"}, "JWT_SECRET", &fakeParameters{err: errors.New("denied")})
	assert.ErrorContains(t, err, "denied")
}
