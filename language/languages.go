package language

type entry struct {
	ext  string
	lang Language
}

// table is sorted by extension. Keep it that way: lookups binary search it.
var table = [...]entry{
	{"bat", Language{"Batch", "batch"}},
	{"c", Language{"C", "c"}},
	{"cc", Language{"C++", "cpp"}},
	{"cl", Language{"Common Lisp", "common-lisp"}},
	{"clj", Language{"Clojure", "clojure"}},
	{"comp", Language{"GLSL", "glsl"}},
	{"cpp", Language{"C++", "cpp"}},
	{"cs", Language{"C#", "csharp"}},
	{"css", Language{"CSS", "css"}},
	{"cxx", Language{"C++", "cpp"}},
	{"dart", Language{"Dart", "dart"}},
	{"frag", Language{"GLSL", "glsl"}},
	{"geom", Language{"GLSL", "glsl"}},
	{"glsl", Language{"GLSL", "glsl"}},
	{"go", Language{"Go", "go"}},
	{"h", Language{"C", "c"}},
	{"haml", Language{"Haml", "haml"}},
	{"handlebars", Language{"Handlebars", "handlebars"}},
	{"hbs", Language{"Handlebars", "handlebars"}},
	{"hlsl", Language{"HLSL", "hlsl"}},
	{"hpp", Language{"C++", "cpp"}},
	{"html", Language{"HTML", "html"}},
	{"hxx", Language{"C++", "cpp"}},
	{"ini", Language{"INI", "ini"}},
	{"java", Language{"Java", "java"}},
	{"jinja", Language{"Jinja", "jinja"}},
	{"jinja2", Language{"Jinja", "jinja"}},
	{"js", Language{"JavaScript", "javascript"}},
	{"json", Language{"JSON", "json"}},
	{"jsonc", Language{"JSON with Comments", "jsonc"}},
	{"kt", Language{"Kotlin", "kotlin"}},
	{"less", Language{"Less", "less"}},
	{"lua", Language{"Lua", "lua"}},
	{"md", Language{"Markdown", "markdown"}},
	{"pl", Language{"Perl", "perl"}},
	{"py", Language{"Python", "python"}},
	{"pyc", Language{"Python", "python"}},
	{"pyo", Language{"Python", "python"}},
	{"rb", Language{"Ruby", "ruby"}},
	{"rkt", Language{"Racket", "racket"}},
	{"rs", Language{"Rust", "rust"}},
	{"sass", Language{"SASS", "sass"}},
	{"sc", Language{"Scala", "scala"}},
	{"scala", Language{"Scala", "scala"}},
	{"scss", Language{"SCSS", "scss"}},
	{"sh", Language{"Shell", "shell"}},
	{"sql", Language{"SQL", "sql"}},
	{"swift", Language{"Swift", "swift"}},
	{"tesc", Language{"GLSL", "glsl"}},
	{"tese", Language{"GLSL", "glsl"}},
	{"tex", Language{"TeX", "tex"}},
	{"toml", Language{"TOML", "toml"}},
	{"ts", Language{"TypeScript", "typescript"}},
	{"vert", Language{"GLSL", "glsl"}},
	{"xhtml", Language{"XHTML", "xhtml"}},
	{"xml", Language{"XML", "xml"}},
	{"yaml", Language{"YAML", "yaml"}},
	{"yml", Language{"YAML", "yaml"}},
}
