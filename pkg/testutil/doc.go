// Package testutil provides helpers for testing unii components.
//
// Env wires a root directory, its Paths, a filesystem and the course and
// template stores together so a test can describe its starting state in a
// few lines:
//
//	env := testutil.NewEnv(t, testutil.EnvMemory)
//	env.Course("COMP1511")
//	env.Template(template.Global, "lab", testutil.LabDefinition)
//
// EnvMemory runs on an in-memory afero filesystem. EnvOS uses a real
// temporary directory and is needed wherever a shell command runs.
package testutil
