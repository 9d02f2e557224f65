package numbertheory

import "errors"

// ErrNoInverse is returned by ModularInverse when gcd(a, n) != 1.
var ErrNoInverse = errors.New("numbertheory: no modular inverse exists")

// ErrNoDiscreteLog is returned by Shanks when no x in [0, m^2) solves
// base^x = element (mod modulus).
var ErrNoDiscreteLog = errors.New("numbertheory: no discrete logarithm found")
