package service

import (
	"context"

	"github.com/petpalhq/petpal/pkg/petpalsdk"
)

// PetVerifier checks with the pet service that a pet exists and belongs to
// the caller. The bearer token is the caller's own, so the pet service
// answers with the caller's ownership scope.
type PetVerifier interface {
	VerifyPet(ctx context.Context, bearerToken, petID string) (bool, error)
}

// SDKPetVerifier verifies pets against a live pet service over HTTP.
type SDKPetVerifier struct {
	Client *petpalsdk.SDKClient
}

func NewSDKPetVerifier(petServiceURL string) *SDKPetVerifier {
	return &SDKPetVerifier{
		Client: petpalsdk.NewSDKClient(petpalsdk.Endpoints{Pets: petServiceURL}),
	}
}

func (v *SDKPetVerifier) VerifyPet(ctx context.Context, bearerToken, petID string) (bool, error) {
	// The forwarded token already passed this service's own verification,
	// so any expiry window larger than the round trip works here.
	session := v.Client.NewSessionFromToken(bearerToken, 120)

	resp, err := session.VerifyPet(ctx, petID)
	if err != nil {
		return false, err
	}
	return resp.Valid, nil
}
