package views

var footerLinks = []Link{
	{Name: "Home", URL: "/"},
	{Name: "Twitter", URL: "https://twitter.com/samuelkraft"},
	{Name: "Newsletter", URL: "/newsletter"},
	{Name: "About", URL: "/about"},
	{Name: "Github", URL: "https://github.com/samuelkraft"},
	{Name: "RSS", URL: "/feed.xml"},
	{Name: "Blog", URL: "/blog"},
	{Name: "Dribbble", URL: "https://dribbble.com/samuelkraft"},
	{Name: "Percentage change calc", URL: "/percentagechange"},
	{Name: "Books", URL: "/books"},
	{Name: "Instagram", URL: "https://www.instagram.com/samuelkraft"},
	{Name: "Changelog", URL: "/changelog"},
}

var navLinks = []Link{
	{Name: "Home", URL: "/"},
	{Name: "Blog", URL: "/blog"},
	{Name: "About", URL: "/about"},
	{Name: "Newsletter", URL: "/newsletter"},
}

// FooterLinks returns a copy of the fixed footer link list.
func FooterLinks() []Link {
	out := make([]Link, len(footerLinks))
	copy(out, footerLinks)
	return out
}
