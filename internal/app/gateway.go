package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rorical/NearCounter/internal/config"
	"github.com/Rorical/NearCounter/internal/gateway"
	"github.com/Rorical/NearCounter/internal/gateway/memory"
	"github.com/Rorical/NearCounter/internal/gateway/near"
)

// memoryLatency makes the in-process contract feel like a network call.
const memoryLatency = 400 * time.Millisecond

// NewGateway builds the gateway a profile asks for.
func NewGateway(profile config.Profile, log logrus.FieldLogger) (gateway.Gateway, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	switch profile.Gateway {
	case config.GatewayNear:
		return near.New(near.Config{
			RPCURL:         profile.RPCURL,
			Network:        profile.Network,
			ContractID:     profile.ContractID,
			AccountID:      profile.AccountID,
			CredentialsDir: profile.CredentialsDir,
			RateLimit:      profile.RateLimit,
		}, log)
	case config.GatewayMemory, "":
		opts := []memory.Option{memory.WithLatency(memoryLatency)}
		if profile.AccountID != "" {
			opts = append(opts, memory.WithAccount(profile.AccountID))
		}
		return memory.New(opts...), nil
	}
	return nil, fmt.Errorf("unknown gateway %q", profile.Gateway)
}
