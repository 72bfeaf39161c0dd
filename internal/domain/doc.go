// Package domain defines the core business entities of the taskboard
// application: users, projects, tasks, labels, comments, and the durable
// session-token records. Entities validate themselves; persistence and
// transport concerns live in other packages.
package domain
