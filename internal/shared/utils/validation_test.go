package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/shared/errors"
)

type visibilityRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	Channel    string `json:"channel" validate:"omitempty,channel"`
	State      string `json:"state" validate:"required,overlay_state"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     visibilityRequest
		wantErr string
	}{
		{name: "valid", req: visibilityRequest{LocationID: "loc_1", Channel: "dine-in", State: "off"}},
		{name: "loose channel spelling", req: visibilityRequest{LocationID: "loc_1", Channel: "Dine_In", State: "removed"}},
		{name: "no channel", req: visibilityRequest{LocationID: "loc_1", State: "on"}},
		{name: "missing location", req: visibilityRequest{State: "on"}, wantErr: "location_id is required"},
		{name: "bad channel", req: visibilityRequest{LocationID: "loc_1", Channel: "drive-thru", State: "on"}, wantErr: "channel must be one of"},
		{name: "bad state", req: visibilityRequest{LocationID: "loc_1", State: "maybe"}, wantErr: "state must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Details, tt.wantErr)
		})
	}
}
