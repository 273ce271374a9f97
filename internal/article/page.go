// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/kgatera/site-tools/internal/site"
)

// pageData feeds the article page template. Body is pre-rendered HTML and
// is inserted without escaping; Title and Date are escaped by the template.
type pageData struct {
	Title string
	Date  string
	Body  template.HTML
	Site  site.Settings
}

var pageTmpl = template.Must(template.New("article").Parse(pageTemplate))

// RenderPage assembles the full article HTML document.
func RenderPage(title, date string, body []byte, settings site.Settings) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, pageData{
		Title: title,
		Date:  date,
		Body:  template.HTML(body),
		Site:  settings,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering article page: %w", err)
	}
	return buf.Bytes(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Site.Title}}</title>
    <style>
` + pageStyles + `
    </style>
</head>
<body>
    <nav>
        <ul>
            <li><a href="{{.Site.TitleHref}}"><strong>{{.Site.Title}}</strong></a></li>
{{- range .Site.Nav}}
            <li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
        </ul>
    </nav>

    <main>
        <article class="article-container">
            <header class="article-header">
                <h1>{{.Title}}</h1>
                <div class="article-meta">{{.Date}}</div>
            </header>

            <div class="article-content">
{{.Body}}
            </div>

            <a href="{{.Site.BlogHref}}" class="back-to-blog">Back to Blog</a>
        </article>
    </main>

    <footer>
        <p>{{.Site.Footer}}</p>
    </footer>
</body>
</html>
`

// pageStyles is the article stylesheet, inlined so generated pages are
// self-contained.
const pageStyles = `        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        html {
            scroll-behavior: smooth;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            background-color: #F5F5F5;
            color: #000000;
            line-height: 1.6;
            overflow-x: hidden;
        }

        /* Navigation */
        nav {
            position: fixed;
            top: 0;
            width: 100%;
            background-color: rgba(245, 245, 245, 0.95);
            backdrop-filter: blur(10px);
            padding: 1.5rem 2rem;
            z-index: 1000;
            border-bottom: 1px solid #e0e0e0;
        }

        nav ul {
            list-style: none;
            display: flex;
            justify-content: flex-start;
            align-items: center;
            gap: 2rem;
            flex-wrap: wrap;
        }

        nav li:first-child {
            margin-right: auto;
        }

        nav li:nth-child(2) {
            margin-left: auto;
        }

        nav a {
            color: #666666;
            text-decoration: none;
            font-size: 0.95rem;
            transition: color 0.3s ease;
            position: relative;
        }

        nav li:first-child a {
            font-size: 1.2rem;
            font-weight: 700;
        }

        nav a:hover {
            color: #000000;
        }

        nav a::after {
            content: '';
            position: absolute;
            bottom: -5px;
            left: 0;
            width: 0;
            height: 2px;
            background-color: #000000;
            transition: width 0.3s ease;
        }

        nav a:hover::after {
            width: 100%;
        }

        /* Main Content */
        main {
            margin-top: 80px;
            padding: 3rem 2rem;
            max-width: 900px;
            margin-left: auto;
            margin-right: auto;
        }

        .article-container {
            background-color: #ffffff;
            border-radius: 12px;
            padding: 3rem;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.05);
        }

        .article-header {
            margin-bottom: 2.5rem;
            padding-bottom: 2rem;
            border-bottom: 1px solid #e0e0e0;
        }

        .article-header h1 {
            font-size: clamp(2rem, 4vw, 3rem);
            font-weight: 700;
            margin-bottom: 1rem;
            color: #000000;
            line-height: 1.2;
        }

        .article-meta {
            font-size: 0.95rem;
            color: #666666;
        }

        .article-content {
            color: #333333;
            font-size: 1.1rem;
            line-height: 1.8;
        }

        .article-content p {
            margin-bottom: 1.5rem;
        }

        .article-content h2 {
            font-size: clamp(1.75rem, 3vw, 2.25rem);
            font-weight: 700;
            margin-top: 2.5rem;
            margin-bottom: 1rem;
            color: #000000;
        }

        .article-content h3 {
            font-size: clamp(1.5rem, 2.5vw, 1.875rem);
            font-weight: 600;
            margin-top: 2rem;
            margin-bottom: 1rem;
            color: #000000;
        }

        .article-content strong {
            font-weight: 600;
            color: #000000;
        }

        .article-content em {
            font-style: italic;
        }

        .article-content a {
            color: #000000;
            text-decoration: underline;
            text-decoration-color: #999999;
            text-underline-offset: 3px;
            transition: text-decoration-color 0.3s ease;
        }

        .article-content a:hover {
            text-decoration-color: #000000;
        }

        .article-content ul,
        .article-content ol {
            margin-left: 1.5rem;
            margin-bottom: 1.5rem;
        }

        .article-content li {
            margin-bottom: 0.5rem;
        }

        .back-to-blog {
            display: inline-block;
            margin-top: 3rem;
            color: #666666;
            text-decoration: none;
            font-size: 0.95rem;
            transition: color 0.3s ease;
            position: relative;
            padding-left: 1.5rem;
        }

        .back-to-blog::before {
            content: '←';
            position: absolute;
            left: 0;
            transition: transform 0.3s ease;
        }

        .back-to-blog:hover {
            color: #000000;
        }

        .back-to-blog:hover::before {
            transform: translateX(-4px);
        }

        /* Footer */
        footer {
            text-align: center;
            padding: 2rem;
            color: #666666;
            font-size: 0.9rem;
            border-top: 1px solid #e0e0e0;
            margin-top: 4rem;
        }

        /* Mobile Responsive */
        @media (max-width: 768px) {
            nav {
                padding: 1rem;
            }

            nav ul {
                gap: 1rem;
                font-size: 0.9rem;
            }

            main {
                padding: 2rem 1.5rem;
            }

            .article-container {
                padding: 2rem 1.5rem;
            }

            .article-header {
                margin-bottom: 2rem;
                padding-bottom: 1.5rem;
            }
        }

        @media (max-width: 480px) {
            nav {
                padding: 0.75rem 1rem;
            }

            nav ul {
                gap: 0.5rem;
                font-size: 0.8rem;
            }

            nav a {
                padding: 0.25rem 0.5rem;
            }

            main {
                padding: 1.5rem 1.25rem;
                margin-top: 60px;
            }

            .article-container {
                padding: 1.5rem 1.25rem;
            }
        }

        /* Smooth fade-in animation */
        @keyframes fadeIn {
            from {
                opacity: 0;
                transform: translateY(20px);
            }
            to {
                opacity: 1;
                transform: translateY(0);
            }
        }

        .article-container {
            animation: fadeIn 0.6s ease-out;
        }`
