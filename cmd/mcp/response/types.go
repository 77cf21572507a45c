package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// NetworkInterface represents one ENI
type NetworkInterface struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	InterfaceType    string `json:"interface_type"`
	Description      string `json:"description,omitempty"`
	SubnetID         string `json:"subnet_id,omitempty"`
	VpcID            string `json:"vpc_id,omitempty"`
	AvailabilityZone string `json:"availability_zone,omitempty"`
	PrivateIP        string `json:"private_ip,omitempty"`
}

// StatusCount is the number of ENIs in one status
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// StatusSummary represents ENI counts per status
type StatusSummary struct {
	AccountID string        `json:"account_id"`
	Region    string        `json:"region"`
	Statuses  []StatusCount `json:"statuses"`
	Total     int           `json:"total"`
}

// DeletionFailure is a delete attempt that returned an error
type DeletionFailure struct {
	ID    string `json:"id"`
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// DeletionReport represents the outcome of deleting available ENIs
type DeletionReport struct {
	Success bool              `json:"success"`
	Deleted []string          `json:"deleted"`
	Failed  []DeletionFailure `json:"failed"`
	Skipped int               `json:"skipped_missing_id"`
}
