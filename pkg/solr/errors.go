package solr

import "errors"

var ErrUnexpectedStatus = errors.New("solr: unexpected status")
