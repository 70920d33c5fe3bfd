package handler

import (
	"github.com/loansewa/loansewa-web/internal/core/ports"
)

// signupForm binds the borrower registration page.
type signupForm struct {
	FullName        string `form:"full_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	MobileNumber    string `form:"mobile_number" validate:"required,len=10,numeric"`
	Aadhar          string `form:"aadhar" validate:"required,len=12,numeric"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (f signupForm) input() ports.SignupInput {
	return ports.SignupInput{
		FullName:     f.FullName,
		Email:        f.Email,
		MobileNumber: f.MobileNumber,
		Aadhar:       f.Aadhar,
		Password:     f.Password,
	}
}

// loginForm binds both login pages. Identifier accepts email or mobile number
// for borrowers; admins log in with email only.
type loginForm struct {
	Identifier string `form:"identifier" validate:"required"`
	Password   string `form:"password" validate:"required"`
	Remember   bool   `form:"remember"`
}

// adminSignupForm binds the admin registration page.
type adminSignupForm struct {
	FullName        string `form:"full_name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	MobileNumber    string `form:"mobile_number" validate:"required,len=10,numeric"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (f adminSignupForm) input() ports.AdminSignupInput {
	return ports.AdminSignupInput{
		FullName:     f.FullName,
		Email:        f.Email,
		MobileNumber: f.MobileNumber,
		Password:     f.Password,
	}
}

// applyForm binds the loan application page. Ranges mirror what the scoring
// model upstream accepts.
type applyForm struct {
	Age                    int     `form:"age" validate:"required,gte=18,lte=100"`
	Income                 float64 `form:"income" validate:"required,gte=0"`
	LoanAmount             float64 `form:"loan_amount" validate:"required,gte=1"`
	LoanTenureMonths       int     `form:"loan_tenure_months" validate:"required,gte=1,lte=360"`
	AvgDPDPerDelinquency   float64 `form:"avg_dpd_per_delinquency" validate:"gte=0"`
	DelinquencyRatio       float64 `form:"delinquency_ratio" validate:"gte=0,lte=100"`
	CreditUtilizationRatio float64 `form:"credit_utilization_ratio" validate:"gte=0,lte=100"`
	NumOpenAccounts        int     `form:"num_open_accounts" validate:"required,gte=1,lte=10"`
	ResidenceType          string  `form:"residence_type" validate:"required,oneof=Owned Rented Mortgage"`
	LoanPurpose            string  `form:"loan_purpose" validate:"required,oneof=Education Home Auto Personal"`
	LoanType               string  `form:"loan_type" validate:"required,oneof=Secured Unsecured"`
}

func (f applyForm) input() ports.ApplicationInput {
	return ports.ApplicationInput{
		Age:                    f.Age,
		Income:                 f.Income,
		LoanAmount:             f.LoanAmount,
		LoanTenureMonths:       f.LoanTenureMonths,
		AvgDPDPerDelinquency:   f.AvgDPDPerDelinquency,
		DelinquencyRatio:       f.DelinquencyRatio,
		CreditUtilizationRatio: f.CreditUtilizationRatio,
		NumOpenAccounts:        f.NumOpenAccounts,
		ResidenceType:          f.ResidenceType,
		LoanPurpose:            f.LoanPurpose,
		LoanType:               f.LoanType,
	}
}
