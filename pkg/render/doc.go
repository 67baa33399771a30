// Package render instantiates a template into a course.
//
// A render runs in a fixed order and stops at the first failure:
//
//  1. every context key must be a declared parameter of the template
//  2. every template string is compiled with the filter library
//  3. the directory name is rendered
//  4. the target <course>/<pluralized-name>/<directory-name> must not exist
//  5. the target is created
//  6. the command is rendered and run with the target as working directory
//  7. every file path and content is rendered
//  8. every file is written under the target
//
// Nothing is rolled back: a failing command leaves the created target in
// place, and running the same render again reports RENDER_ALREADY_EXISTS.
package render
