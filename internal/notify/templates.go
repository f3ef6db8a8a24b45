package notify

import "fmt"

const signature = "Best Regards,\nThe Joe Killeen Memorial Foundation."

// PaymentLinkMessage asks a golfer to complete payment at link.
func PaymentLinkMessage(to, link string) Message {
	return Message{
		To:      to,
		Subject: "Complete Your Golf Tournament Registration Payment",
		Body:    fmt.Sprintf("Please complete your payment using the following link: %s", link),
	}
}

// ContactConfirmation acknowledges a contact-form submission to the sender.
func ContactConfirmation(to, firstName string) Message {
	return Message{
		To:      to,
		Subject: "Confirmation of Your Submission",
		Body: fmt.Sprintf("Hello %s,\n\nThank you for reaching out to us. We have received your submission "+
			"and will get back to you soon.\n\n%s", firstName, signature),
	}
}

// ContactDetails is the content of a contact-form submission.
type ContactDetails struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Subject     string
	Message     string
}

// ContactAdminNotice forwards a contact-form submission to the foundation
// inbox. The recipient is filled in by Dispatcher.DispatchAdmin.
func ContactAdminNotice(d ContactDetails) Message {
	return Message{
		ReplyTo: d.Email,
		Subject: "New Contact Form Submission",
		Body: fmt.Sprintf("New submission received:\n\nName: %s %s\nEmail: %s\nPhone: %s\n\nSubject: %s\nMessage: %s",
			d.FirstName, d.LastName, d.Email, d.PhoneNumber, d.Subject, d.Message),
	}
}

// NewsletterWelcome confirms a newsletter subscription.
func NewsletterWelcome(to string) Message {
	return Message{
		To:      to,
		Subject: "Subscription to Newsletter",
		Body:    "Hello,\n\nThank you for subscribing to our Newsletter! \n\n" + signature,
	}
}

// MarathonConfirmation acknowledges a marathon inquiry.
func MarathonConfirmation(to, firstName string) Message {
	return Message{
		To:      to,
		Subject: "Marathon Inquiry Confirmation",
		Body: fmt.Sprintf("Hello %s,\n\nThank you for your interest in our marathon. We have received your "+
			"registration details.\n\nFundraising Goal Agreed: $3,500\n\n%s", firstName, signature),
	}
}

// MarathonDetails is the content of a marathon inquiry.
type MarathonDetails struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Email           string
	FundraisingGoal bool
	MarathonReason  string
	AdditionalNames string
}

// MarathonAdminNotice forwards a marathon inquiry to the foundation inbox.
func MarathonAdminNotice(d MarathonDetails) Message {
	agreed := "No"
	if d.FundraisingGoal {
		agreed = "Yes"
	}
	return Message{
		ReplyTo: d.Email,
		Subject: "New Marathon Inquiry",
		Body: fmt.Sprintf("New marathon Inquiry received:\n\nName: %s %s\nEmail: %s\nPhone: %s\n\n"+
			"Fundraising Goal Agreed: %s\nMarathon Reason: %s\nAdditional Names: %s",
			d.FirstName, d.LastName, d.Email, d.PhoneNumber, agreed, d.MarathonReason, d.AdditionalNames),
	}
}
