package ui

// Platform identifies one of the fixed deployment targets.
type Platform int

// The closed set of deployment platforms, in menu order.
const (
	PlatformGitHubPages Platform = iota + 1
	PlatformNetlify
	PlatformVercel
)

// Platforms lists every deployment target in menu order.
//
//nolint:gochecknoglobals // Fixed menu ordering
var Platforms = []Platform{
	PlatformGitHubPages,
	PlatformNetlify,
	PlatformVercel,
}

// Name returns the platform's display name.
func (p Platform) Name() (name string) {
	switch p {
	case PlatformGitHubPages:
		name = "GitHub Pages"
	case PlatformNetlify:
		name = "Netlify"
	case PlatformVercel:
		name = "Vercel"
	}
	return name
}

// Pros returns the platform's upside summary.
func (p Platform) Pros() (pros string) {
	switch p {
	case PlatformGitHubPages:
		pros = "Free, easy integration with GitHub"
	case PlatformNetlify:
		pros = "Excellent performance, easy deployment"
	case PlatformVercel:
		pros = "Great for React/Next.js projects"
	}
	return pros
}

// Cons returns the platform's downside summary.
func (p Platform) Cons() (cons string) {
	switch p {
	case PlatformGitHubPages:
		cons = "Limited to static content"
	case PlatformNetlify:
		cons = "Some advanced features require paid plan"
	case PlatformVercel:
		cons = "More complex setup for simple static sites"
	}
	return cons
}

// Steps returns the platform's deployment steps in order.
func (p Platform) Steps() (steps []string) {
	switch p {
	case PlatformGitHubPages:
		steps = []string{
			"Create a new GitHub repository",
			"Push your portfolio files to the repository",
			"Go to repository Settings > Pages",
			"Select main branch as source",
			"Your site will be live at username.github.io/repository",
		}
	case PlatformNetlify:
		steps = []string{
			"Create a Netlify account",
			"Drag and drop your portfolio folder",
			"Configure custom domain (optional)",
			"Enable HTTPS",
		}
	case PlatformVercel:
		steps = []string{
			"Create a Vercel account",
			"Install Vercel CLI: npm i -g vercel",
			"Run 'vercel' in project directory",
			"Follow CLI prompts",
		}
	}
	return steps
}

// platformFromChoice maps a menu selection to its platform.
func platformFromChoice(choice string) (platform Platform, ok bool) {
	switch choice {
	case "1":
		platform, ok = PlatformGitHubPages, true
	case "2":
		platform, ok = PlatformNetlify, true
	case "3":
		platform, ok = PlatformVercel, true
	}
	return platform, ok
}

// DeploymentGuide displays the deployment options and, if the user picks
// one, a detailed step-by-step guide. The selection performs no action
// beyond printing guidance; an invalid selection prints nothing further.
func (u *UI) DeploymentGuide() {
	u.Header("Deployment Options")

	for i, platform := range Platforms {
		u.Printf("\n%d. %s\n", i+1, platform.Name())
		u.Printf("Pros: %s\n", platform.Pros())
		u.Printf("Cons: %s\n", platform.Cons())
		u.Println("\nDeployment steps:")
		for _, step := range platform.Steps() {
			u.Printf("  • %s\n", step)
		}
	}

	choice := u.ReadLine("\nSelect a deployment option (1-3) for detailed instructions: ")
	platform, ok := platformFromChoice(choice)
	if !ok {
		return
	}

	u.Printf("\nDetailed guide for %s deployment:\n", platform.Name())
	for i, step := range platform.Steps() {
		u.Printf("%d. %s\n", i+1, step)
	}
}
