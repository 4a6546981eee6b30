package ports

import "context"

// Probe checks one external condition. A false result means "not yet"; an
// error means the check itself could not be carried out.
type Probe interface {
	Check(ctx context.Context) (bool, error)
	String() string
}
