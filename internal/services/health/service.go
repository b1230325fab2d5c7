package health

// ServiceName identifies this API in health responses.
const ServiceName = "resume-match"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the liveness payload.
func (s *Service) Status() map[string]any {
	return map[string]any{
		"ok":      true,
		"service": ServiceName,
	}
}
