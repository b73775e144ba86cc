// Package provider models the users that take part in a harvest job:
// farmers who submit jobs, labour teams and transport owners who accept them,
// and administrators. Only identity and display attributes are kept here.
package provider
