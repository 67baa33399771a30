// Package template holds the template definition: its on-disk schema, the
// nested file tree authors write, and the store that creates, opens and lists
// definitions in a scope.
//
// A definition lives at <templates-dir>/<name>.yml. The global scope uses the
// root templates directory; a course scope uses the course's private one.
//
//	pluralized-name: labs
//	context-parameters: [name]
//	directory-name: "{{ .name }}"
//	command: git init -q
//	files:
//	  README.md: "# {{ .name }}"
//	  src:
//	    main.go: "package {{ .name | snake_case }}"
//
// The file tree is flattened on load, so the definition above holds the
// paths README.md and src/main.go.
package template
