package models

import "net/url"

// Requester identifies the user creating gift requests. It arrives as query
// parameters and is carried between pages unchanged.
type Requester struct {
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	UserEmail   string `json:"userEmail"`
	CompanyName string `json:"companyName"`
	Department  string `json:"department"`
}

// Query parameter names carrying the requester identity.
const (
	ParamUserID      = "userId"
	ParamUserName    = "userName"
	ParamUserEmail   = "userEmail"
	ParamCompanyName = "companyName"
	ParamDepartment  = "department"
)

// Values encodes the non-empty identity fields as query parameters.
func (r Requester) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set(ParamUserID, r.UserID)
	set(ParamUserName, r.UserName)
	set(ParamUserEmail, r.UserEmail)
	set(ParamCompanyName, r.CompanyName)
	set(ParamDepartment, r.Department)
	return v
}

// Query returns the encoded identity, suitable for appending after "?".
func (r Requester) Query() string {
	return r.Values().Encode()
}

// DisplayName falls back to "User" when no name was supplied.
func (r Requester) DisplayName() string {
	if r.UserName == "" {
		return "User"
	}
	return r.UserName
}

// OrNA returns "N/A" for empty optional identity fields.
func OrNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
