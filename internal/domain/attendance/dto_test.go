package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanpoint/attendance-backend-go/internal/pkg/validator"
)

func TestScanRequestValidate(t *testing.T) {
	valid := 7
	zero := 0
	negative := -3

	cases := []struct {
		name      string
		req       ScanRequest
		wantField string
	}{
		{"valid", ScanRequest{FingerprintID: &valid}, ""},
		{"missing", ScanRequest{}, "fingerprint_id"},
		{"zero", ScanRequest{FingerprintID: &zero}, "fingerprint_id"},
		{"negative", ScanRequest{FingerprintID: &negative}, "fingerprint_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tc.wantField)
		})
	}
}
