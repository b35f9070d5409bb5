package render

import "github.com/trebuchet-org/catapult/internal/usecase"

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.DeployContractResult]  = (*DeployRenderer)(nil)
	_ Renderer[*usecase.CheckDeploymentResult] = (*CheckRenderer)(nil)
	_ Renderer[*usecase.ShowStatusResult]      = (*StatusRenderer)(nil)
)
