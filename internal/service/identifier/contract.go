//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identifier_test
package identifier

import "context"

type Repository interface {
	MissionNumberExists(ctx context.Context, number string) (bool, error)
}
