package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "turkish folding", in: "çağrı öztürk", want: "CAGRI_OZTURK"},
		{name: "mixed case", in: "Ayşe Yılmaz", want: "AYSE_YILMAZ"},
		{name: "plain ascii", in: "Ali Veli", want: "ALI_VELI"},
		{name: "empty", in: "", want: "BILINMEYEN_ADAY"},
		{name: "whitespace only", in: "   ", want: "BILINMEYEN_ADAY"},
		{name: "punctuation dropped", in: "O'Brien, Jr.", want: "OBRIEN_JR"},
		{name: "symbols only", in: "!!!", want: "BILINMEYEN_ADAY"},
		{name: "hyphen kept", in: "Jean-Luc Picard", want: "JEAN-LUC_PICARD"},
		{name: "whitespace collapsed", in: "  Ali   Veli  ", want: "ALI_VELI"},
		{name: "digits kept", in: "Aday 2", want: "ADAY_2"},
		{name: "capital dotted i", in: "İsmail", want: "ISMAIL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeName(tt.in))
		})
	}
}
