package site

// Fixed output filenames, overwritten on every run.
const (
	HTMLFilename = "portfolio.html"
	CSSFilename  = "styles.css"
	JSFilename   = "scripts.js"
)

// pageTemplate is the fixed portfolio page. Section content is substituted
// verbatim - the projects and education fragments are themselves HTML.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}}'s Portfolio</title>
    <link rel="stylesheet" href="styles.css">
    <script src="scripts.js" defer></script>
</head>
<body>
    <nav>
        <ul>
            <li><a href="#about">About</a></li>
            <li><a href="#skills">Skills</a></li>
            <li><a href="#projects">Projects</a></li>
            <li><a href="#education">Education</a></li>
            <li><a href="#interests">Interests</a></li>
            <li><a href="#contact">Contact</a></li>
        </ul>
    </nav>
    <header>
        <h1>{{.Name}}'s Portfolio</h1>
    </header>
    <main>
        <section id="about">
            <h2>About Me</h2>
            <p>{{.Bio}}</p>
        </section>

        <section id="skills">
            <h2>Skills</h2>
            <ul>
                {{.Skills}}
            </ul>
        </section>

        <section id="projects">
            <h2>Projects</h2>
            <ol>
                {{.Projects}}
            </ol>
        </section>

        <section id="education">
            <h2>Education</h2>
            <div class="education-container">
                {{.Education}}
            </div>
        </section>

        <section id="interests">
            <h2>Interests</h2>
            <ul>
                {{.Interests}}
            </ul>
        </section>

        <section id="contact">
            <h2>Contact</h2>
            <p>{{.Contact}}</p>
        </section>
    </main>

    <footer>
        <p>Thank you for visiting my portfolio! &copy; {{.Name}}</p>
    </footer>
</body>
</html>
`

// stylesheet is the fixed visual ruleset: navigation, gradient header, and
// responsive education cards.
const stylesheet = `@import url('https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap');

body {
    font-family: 'Roboto', sans-serif;
    margin: 0;
    background-color: #f9f9f9;
    color: #333;
}
nav ul {
    background-color: #444;
    overflow: hidden;
    list-style: none;
    margin: 0;
    padding: 0;
    text-align: center;
}
nav ul li {
    display: inline;
}
nav ul li a {
    display: inline-block;
    color: #fff;
    padding: 15px;
    text-decoration: none;
}
nav ul li a:hover {
    background-color: #555;
}
header {
    background: linear-gradient(135deg, #6b73ff, #000dff);
    color: #fff;
    padding: 40px 20px;
    text-align: center;
}
main {
    margin: 20px auto;
    max-width: 800px;
    padding: 0 20px;
}
h1, h2 {
    color: #444;
}
ul, ol {
    margin: 20px;
    padding: 0 20px;
}
footer {
    background-color: #444;
    color: #fff;
    text-align: center;
    padding: 10px 0;
}

/* Education Section Styling */
.education-entry {
    background: #ffffff;
    border-radius: 8px;
    padding: 20px;
    margin-bottom: 20px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
    transition: transform 0.2s ease;
}

.education-entry:hover {
    transform: translateY(-5px);
    box-shadow: 0 4px 8px rgba(0,0,0,0.2);
}

.education-entry .degree {
    color: #2c3e50;
    margin: 0 0 10px 0;
    font-size: 1.4em;
}

.education-entry .institution {
    color: #3498db;
    font-weight: bold;
    margin-bottom: 5px;
}

.education-entry .year {
    color: #7f8c8d;
    font-style: italic;
    margin-bottom: 10px;
}

.education-entry .details ul {
    margin: 10px 0;
    padding-left: 20px;
}

.education-entry .details li {
    color: #555;
    margin: 5px 0;
}

/* Responsive design for education section */
@media (max-width: 768px) {
    .education-entry {
        padding: 15px;
    }

    .education-entry .degree {
        font-size: 1.2em;
    }
}
`

// interactionScript applies the hover-scale effect to page sections.
const interactionScript = `document.addEventListener('DOMContentLoaded', () => {
    const sections = document.querySelectorAll('section');
    sections.forEach(section => {
        section.addEventListener('mouseenter', () => {
            section.style.transform = 'scale(1.02)';
            section.style.transition = 'transform 0.3s ease';
        });
        section.addEventListener('mouseleave', () => {
            section.style.transform = 'scale(1)';
        });
    });
});
`
