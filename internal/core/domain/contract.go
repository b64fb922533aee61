package domain

import (
	"fmt"
	"strconv"
)

// ContractKind selects the legal template of a generated contract.
type ContractKind string

const (
	ContractSale     ContractKind = "sale"
	ContractPurchase ContractKind = "purchase" // settlement (solh) contract
)

func (k ContractKind) Valid() bool {
	return k == ContractSale || k == ContractPurchase
}

// MaxContractPayments is the number of payment rows a contract table holds.
const MaxContractPayments = 3

// PartyIdentity is the identity block of a seller or buyer on a contract.
type PartyIdentity struct {
	Name       string `json:"name"`
	NationalID string `json:"nationalId"`
	Birth      string `json:"birth"`
	IssuedBy   string `json:"issuedBy"`
	FatherName string `json:"fatherName"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// PaymentRow is one line of the contract payment table.
type PaymentRow struct {
	Description string `json:"description"`
	Bank        string `json:"bank"`
	Amount      string `json:"amount"`
	Method      string `json:"method"`
	Notes       string `json:"notes"`
}

// IsBlank reports whether every cell of the row is empty.
func (p PaymentRow) IsBlank() bool {
	return p.Description == "" && p.Bank == "" && p.Amount == "" && p.Method == "" && p.Notes == ""
}

// ContractData is everything needed to render a contract document.
type ContractData struct {
	Kind            ContractKind  `json:"kind"`
	Seller          PartyIdentity `json:"seller"`
	Buyer           PartyIdentity `json:"buyer"`
	SimNumber       string        `json:"simNumber"`
	SaleAmount      int64         `json:"saleAmount"` // rial
	SaleAmountToman string        `json:"saleAmountToman"`
	PaymentDate     string        `json:"paymentDate"`
	InvoiceAmount   string        `json:"invoiceAmount"`
	InvoiceDate     string        `json:"invoiceDate"`
	Payments        []PaymentRow  `json:"payments"`
	Notes           string        `json:"notes"`
}

// CounterpartyNationalID returns the national id of the other side of the deal:
// the buyer on a sale, the seller on a purchase.
func (c ContractData) CounterpartyNationalID() string {
	if c.Kind == ContractPurchase {
		return c.Seller.NationalID
	}
	return c.Buyer.NationalID
}

// PaymentTable returns the non-blank payment rows as table cells in
// description, bank, amount, method, notes order.
func (c ContractData) PaymentTable() [][5]string {
	rows := make([][5]string, 0, len(c.Payments))
	for _, p := range c.Payments {
		if p.IsBlank() {
			continue
		}
		rows = append(rows, [5]string{p.Description, p.Bank, p.Amount, p.Method, p.Notes})
	}
	return rows
}

// Fields flattens the contract into the key/value record consumed by renderers.
func (c ContractData) Fields() map[string]string {
	f := map[string]string{
		"contract_kind":      string(c.Kind),
		"sim_number":         c.SimNumber,
		"sale_amount":        strconv.FormatInt(c.SaleAmount, 10),
		"sale_amount_toman":  c.SaleAmountToman,
		"payment_date":       c.PaymentDate,
		"invoice_amount":     c.InvoiceAmount,
		"invoice_date":       c.InvoiceDate,
		"notes":              c.Notes,
		"seller_name":        c.Seller.Name,
		"seller_national_id": c.Seller.NationalID,
		"seller_birth":       c.Seller.Birth,
		"seller_issued":      c.Seller.IssuedBy,
		"seller_child":       c.Seller.FatherName,
		"seller_phone":       c.Seller.Phone,
		"seller_address":     c.Seller.Address,
		"buyer_name":         c.Buyer.Name,
		"buyer_national_id":  c.Buyer.NationalID,
		"buyer_birth":        c.Buyer.Birth,
		"buyer_issued":       c.Buyer.IssuedBy,
		"buyer_child":        c.Buyer.FatherName,
		"buyer_phone":        c.Buyer.Phone,
		"buyer_address":      c.Buyer.Address,
	}
	for i, p := range c.Payments {
		prefix := fmt.Sprintf("payment_%d_", i+1)
		f[prefix+"description"] = p.Description
		f[prefix+"bank"] = p.Bank
		f[prefix+"amount"] = p.Amount
		f[prefix+"method"] = p.Method
		f[prefix+"notes"] = p.Notes
	}
	return f
}

// ArchiveEntry is one record of the contract archive manifest.
type ArchiveEntry struct {
	DocumentType ContractKind `json:"document_type"`
	Filename     string       `json:"filename"`
	GeneratedAt  string       `json:"generated_at"`
}

// GeneratedContract is the outcome of generating a contract: the archived
// document and, when it could be recorded, the ledger transaction.
type GeneratedContract struct {
	Entry         ArchiveEntry
	TransactionID *int64
}
