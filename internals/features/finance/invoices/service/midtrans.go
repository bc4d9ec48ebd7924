package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"sekolahku_backend/internals/features/finance/invoices/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string, useProd bool) {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu invoice.
func GenerateSnapToken(inv model.InvoiceModel, customerName string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceOrderID,
			GrossAmt: inv.InvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}
