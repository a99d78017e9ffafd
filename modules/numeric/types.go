package numeric

// Service names registered by the numeric module.
const (
	ServiceFibonacci = "fibonacci"
	ServicePrime     = "prime"
	ServiceLCM       = "lcm"
	ServiceHCF       = "hcf"
)

// SequenceRequest is the request for the fibonacci service.
type SequenceRequest struct {
	Count int64 `json:"count"`
}

// SequenceResponse is the response from the fibonacci service.
type SequenceResponse struct {
	Terms []int64 `json:"terms"`
	Code  string  `json:"code,omitempty"`
	Error string  `json:"error,omitempty"`
}

// NumbersRequest is the request for the prime, lcm and hcf services.
type NumbersRequest struct {
	Numbers []int64 `json:"numbers"`
}

// PrimeResponse is the response from the prime service.
type PrimeResponse struct {
	Primes []int64 `json:"primes"`
	Code   string  `json:"code,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// ReduceResponse is the response from the lcm and hcf services.
type ReduceResponse struct {
	Result int64  `json:"result"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}
