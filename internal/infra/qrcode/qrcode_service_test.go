package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR("HANDOFF-1234")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PickupCode: "HANDOFF-1234",
		Type:       "pickup",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	code, err := service.ParsePickupQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, "HANDOFF-1234", code)
}

func TestQRCodeService_ParsePickupQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	data := QRCodeData{
		PickupCode: "HANDOFF-1234",
		Type:       "subscription",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParsePickupQR(string(jsonData))
	assert.Error(t, err)
}

func TestQRCodeService_ParsePickupQR_MalformedData(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.ParsePickupQR("not json at all")
	assert.Error(t, err)

	_, err = service.ParsePickupQR(`{"type":"pickup","pickup_code":""}`)
	assert.Error(t, err)
}
