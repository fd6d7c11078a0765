package cluster

import "errors"

// ErrNotFitted is returned by Clusters when called before a successful Fit.
var ErrNotFitted = errors.New("cluster: not yet fitted")
