package cli

// commands is the REPL command table, in help order.
func (a *App) commands() []command {
	return []command{
		// session
		{name: "register", usage: "register", help: "create an account", run: a.register},
		{name: "login", usage: "login", help: "sign in", run: a.login},
		{name: "2fa", usage: "2fa [code]", help: "finish a login that needs a 2FA code", run: a.verifyTwoFA},
		{name: "verify-email", usage: "verify-email [token]", help: "confirm your email with the token from the link", run: a.verifyEmail},
		{name: "send-verification", usage: "send-verification [email]", help: "email a verification link", run: a.sendVerification},
		{name: "resend-verification", usage: "resend-verification", help: "email the verification link again", run: a.resendVerification},
		{name: "forgot-password", usage: "forgot-password [email]", help: "email a password reset link", run: a.forgotPassword},
		{name: "reset-password", usage: "reset-password [token]", help: "set a new password with a reset token", run: a.resetPassword},
		{name: "logout", usage: "logout", help: "sign out", auth: true, run: a.logout},
		{name: "refresh", usage: "refresh", help: "renew the session token", auth: true, run: a.refresh},
		{name: "whoami", usage: "whoami", help: "show the signed-in user", auth: true, run: a.whoami},

		// account
		{name: "profile", usage: "profile", help: "show your profile", auth: true, run: a.showProfile},
		{name: "profile-edit", usage: "profile-edit", help: "change your name or email", auth: true, run: a.editProfile},
		{name: "change-password", aliases: []string{"passwd"}, usage: "change-password", help: "change your password", auth: true, run: a.changePassword},
		{name: "delete-account", usage: "delete-account", help: "permanently delete your account", auth: true, run: a.deleteAccount},
		{name: "usage", usage: "usage", help: "show credits and monthly quotas", auth: true, run: a.showUsage},
		{name: "2fa-setup", usage: "2fa-setup", help: "enable two-factor authentication", auth: true, run: a.setupTwoFA},
		{name: "2fa-disable", usage: "2fa-disable", help: "disable two-factor authentication", auth: true, run: a.disableTwoFA},

		// resumes
		{name: "resumes", usage: "resumes", help: "list your resumes", auth: true, run: a.listResumes},
		{name: "resume", usage: "resume <id>", help: "show a resume", auth: true, run: a.showResume},
		{name: "resume-add", usage: "resume-add", help: "create a resume from pasted text", auth: true, run: a.addResume},
		{name: "resume-import", usage: "resume-import <path> [title]", help: "create a resume from a text file", auth: true, run: a.importResume},
		{name: "resume-edit", usage: "resume-edit <id>", help: "change a resume's title or content", auth: true, run: a.editResume},
		{name: "resume-delete", usage: "resume-delete <id>", help: "delete a resume", auth: true, run: a.deleteResume},
		{name: "resume-default", usage: "resume-default <id>", help: "make a resume the default", auth: true, run: a.setDefaultResume},
		{name: "resume-copy", usage: "resume-copy <id> [title]", help: "duplicate a resume", auth: true, run: a.duplicateResume},

		// applications
		{name: "apps", usage: "apps [status]", help: "list job applications", auth: true, run: a.listApplications},
		{name: "app", usage: "app <id>", help: "show an application and its follow-ups", auth: true, run: a.showApplication},
		{name: "app-add", usage: "app-add", help: "track a new application", auth: true, run: a.addApplication},
		{name: "app-status", usage: "app-status <id> <status>", help: "move an application to another stage", auth: true, run: a.setApplicationStatus},
		{name: "app-edit", usage: "app-edit <id>", help: "edit an application", auth: true, run: a.editApplication},
		{name: "app-delete", usage: "app-delete <id>", help: "delete an application", auth: true, run: a.deleteApplication},
		{name: "followup", usage: "followup <id>", help: "record a follow-up on an application", auth: true, run: a.addFollowUp},

		// AI tools
		{name: "analyze", usage: "analyze", help: "extract the requirements of a job description", run: a.analyzeJob},
		{name: "tailor", usage: "tailor <resume-id>", help: "tailor a resume to a job", auth: true, run: a.tailorResume},
		{name: "cover-letter", usage: "cover-letter <resume-id>", help: "write a cover letter", auth: true, run: a.coverLetter},
		{name: "star", usage: "star <resume-id> [count]", help: "write STAR interview stories", auth: true, run: a.starStories},

		// billing
		{name: "plans", usage: "plans", help: "list subscription plans", run: a.listPlans},
		{name: "subscription", usage: "subscription", help: "show your subscription", auth: true, run: a.showSubscription},
		{name: "checkout", usage: "checkout <plan> [month|year]", help: "pay for a plan in the browser", auth: true, run: a.checkout},
		{name: "subscribe", usage: "subscribe <plan> <month|year> <payment-method-id>", help: "subscribe with a saved payment method", auth: true, run: a.subscribe},
		{name: "change-plan", usage: "change-plan <plan> [month|year]", help: "switch plans", auth: true, run: a.changePlan},
		{name: "cancel", usage: "cancel [--now]", help: "cancel your subscription", auth: true, run: a.cancelSubscription},
		{name: "history", usage: "history", help: "show billing history", auth: true, run: a.billingHistory},
		{name: "payment-intent", usage: "payment-intent <amount-cents> <currency> [description]", help: "create a one-off payment", auth: true, run: a.paymentIntent},

		{name: "analytics", usage: "analytics", help: "show your job search analytics", auth: true, run: a.showAnalytics},
	}
}
