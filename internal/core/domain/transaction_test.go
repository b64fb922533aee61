package domain_test

import (
	"testing"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDirectionFromLabel(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		want   domain.Direction
		wantOK bool
	}{
		{name: "receipt prefix", label: "receipt sale", want: domain.Inflow, wantOK: true},
		{name: "payment prefix", label: "payment purchase", want: domain.Outflow, wantOK: true},
		{name: "case and whitespace", label: "  Receipt ", want: domain.Inflow, wantOK: true},
		{name: "persian receipt", label: "دریافت فروش", want: domain.Inflow, wantOK: true},
		{name: "persian payment", label: "پرداخت خرید", want: domain.Outflow, wantOK: true},
		{name: "free label", label: "adjustment", wantOK: false},
		{name: "empty", label: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.DirectionFromLabel(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimNumberAndNationalID(t *testing.T) {
	assert.True(t, domain.ValidSimNumber("09121234567"))
	assert.True(t, domain.ValidSimNumber("9121234567"))
	assert.False(t, domain.ValidSimNumber("0812345678"))
	assert.False(t, domain.ValidSimNumber("0912-123-4567"))

	assert.True(t, domain.ValidNationalID("0012345678"))
	assert.False(t, domain.ValidNationalID("12345"))
	assert.False(t, domain.ValidNationalID("00123456789"))
}

func TestContractPaymentTableSkipsBlankRows(t *testing.T) {
	c := domain.ContractData{
		Kind: domain.ContractPurchase,
		Payments: []domain.PaymentRow{
			{Description: "deposit", Amount: "100"},
			{},
			{Method: "cash"},
		},
		Seller: domain.PartyIdentity{NationalID: "0012345678"},
		Buyer:  domain.PartyIdentity{NationalID: "0087654321"},
	}

	rows := c.PaymentTable()
	assert.Equal(t, [][5]string{{"deposit", "", "100", "", ""}, {"", "", "", "cash", ""}}, rows)
	assert.Equal(t, "0012345678", c.CounterpartyNationalID())

	c.Kind = domain.ContractSale
	assert.Equal(t, "0087654321", c.CounterpartyNationalID())
}

func TestContractFields(t *testing.T) {
	c := domain.ContractData{
		Kind:       domain.ContractSale,
		SimNumber:  "09121234567",
		SaleAmount: 15000000,
		Seller:     domain.PartyIdentity{Name: "Ali", FatherName: "Reza"},
		Payments:   []domain.PaymentRow{{Bank: "Mellat"}},
	}

	f := c.Fields()
	assert.Equal(t, "sale", f["contract_kind"])
	assert.Equal(t, "15000000", f["sale_amount"])
	assert.Equal(t, "Reza", f["seller_child"])
	assert.Equal(t, "Mellat", f["payment_1_bank"])
	_, hasSecond := f["payment_2_bank"]
	assert.False(t, hasSecond)
}

func TestOperatorValid(t *testing.T) {
	for _, op := range domain.Operators {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, domain.Operator("mci").Valid())
	assert.False(t, domain.Operator("").Valid())
}
