package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhanrush/dhanrush-backend/internal/models"
)

func TestParseAction(t *testing.T) {
	testCases := []struct {
		data   string
		action Action
		method string
	}{
		{"watch", ActionWatch, ""},
		{"bonus", ActionBonus, ""},
		{"invite", ActionInvite, ""},
		{"bal", ActionBalance, ""},
		{"withdraw", ActionWithdraw, ""},
		{"open_web", ActionOpenWeb, ""},
		{"back", ActionBack, ""},
		{"w_m_upi", ActionSelectMethod, models.MethodUPI},
		{"w_m_paytm", ActionSelectMethod, models.MethodPaytm},
		{"w_m_bank", ActionSelectMethod, models.MethodBank},
		{"w_m_other", ActionSelectMethod, models.MethodOther},
		{"", ActionUnknown, ""},
		{"nonsense", ActionUnknown, ""},
		{"w_m_crypto", ActionUnknown, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.data, func(t *testing.T) {
			action, method := ParseAction(tc.data)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.method, method)
		})
	}
}
