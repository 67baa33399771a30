// Package paths provides centralized path handling for unii.
//
// A Paths value is built once from the loaded settings and passed to every
// component that needs to locate something on disk. There is no package-level
// state; two Paths values with different roots never interfere.
//
// # Layout
//
//	<root>/                               root storage directory (settings "path")
//	<root>/.unii/templates/<name>.yml     global templates
//	<root>/<code>/                        a course
//	<root>/<code>/.unii/course.yml        the course record
//	<root>/<code>/.unii/templates/        templates private to the course
//	<root>/<code>/<plural>/<rendered>/    rendered template instances
//
// # Usage
//
//	p, err := paths.New(settings.Path)
//	if err != nil {
//	    return err
//	}
//
//	p.CourseDir("COMP1511")          // /home/user/unii/COMP1511
//	p.TemplatesDir()                 // /home/user/unii/.unii/templates
//	p.CourseTemplatesDir("COMP1511") // /home/user/unii/COMP1511/.unii/templates
package paths
