package templates

var frenchTemplates = map[string]Template{
	"received": {
		EventKey: "received",
		Language: "fr",
		Subject:  "Ticket {ticketId} bien reçu",
		Text: "Bonjour {name},\n\n" +
			"Nous avons bien reçu votre demande « {title} » et ouvert le ticket {ticketId}.\n" +
			"Notre équipe de support va l'examiner et revenir vers vous rapidement.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, votre demande a bien été reçue. Ticket {ticketId} ouvert. Nous vous tiendrons informé.",
	},
	"assigned": {
		EventKey: "assigned",
		Language: "fr",
		Subject:  "Ticket {ticketId} attribué à {assignee}",
		Text: "Bonjour {name},\n\n" +
			"Votre ticket {ticketId} (« {title} ») a été attribué à {assignee}.\n" +
			"Il vous contactera dès qu'il aura étudié votre demande.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, le ticket {ticketId} a été attribué à {assignee}. Vous serez contacté sous peu.",
	},
	"in_progress": {
		EventKey: "in_progress",
		Language: "fr",
		Subject:  "Ticket {ticketId} en cours de traitement",
		Text: "Bonjour {name},\n\n" +
			"Le traitement de votre ticket {ticketId} (« {title} ») a commencé.\n" +
			"Nous vous préviendrons dès qu'il y aura du nouveau.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, le traitement du ticket {ticketId} a commencé. Nous vous tiendrons informé.",
	},
	"escalated": {
		EventKey: "escalated",
		Language: "fr",
		Subject:  "Ticket {ticketId} transmis à {escalatedTo}",
		Text: "Bonjour {name},\n\n" +
			"Votre ticket {ticketId} (« {title} ») a été transmis à {escalatedTo}.\n" +
			"Il est désormais traité en priorité.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, le ticket {ticketId} a été transmis à {escalatedTo} et est traité en priorité.",
	},
	"resolved": {
		EventKey: "resolved",
		Language: "fr",
		Subject:  "Ticket {ticketId} résolu",
		Text: "Bonjour {name},\n\n" +
			"Votre ticket {ticketId} (« {title} ») a été résolu.\n\n" +
			"Notes de résolution :\n{response}\n\n" +
			"Si le problème persiste, répondez simplement et le ticket sera rouvert.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, le ticket {ticketId} est résolu. Répondez si le problème persiste et il sera rouvert.",
	},
	"closed": {
		EventKey: "closed",
		Language: "fr",
		Subject:  "Ticket {ticketId} clôturé",
		Text: "Bonjour {name},\n\n" +
			"Votre ticket {ticketId} (« {title} ») a été clôturé.\n" +
			"Merci de votre patience pendant son traitement.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, le ticket {ticketId} est clôturé. Merci de votre patience.",
	},
	"trip_started": {
		EventKey: "trip_started",
		Language: "fr",
		Subject:  "Votre voyage vers {destination} a commencé",
		Text: "Bonjour {name},\n\n" +
			"Votre voyage vers {destination} est en cours (référence {ticketId}).\n" +
			"Nous vous préviendrons à l'approche de l'arrivée.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, votre voyage vers {destination} a commencé. Référence {ticketId}.",
	},
	"trip_remaining_time": {
		EventKey: "trip_remaining_time",
		Language: "fr",
		Subject:  "Arrivée à {destination} dans {remainingTime}",
		Text: "Bonjour {name},\n\n" +
			"Vous arriverez à {destination} dans environ {remainingTime} (référence {ticketId}).\n" +
			"Merci de vous préparer pour l'arrivée.\n\n" +
			"Avis généré le {date}.",
		SMS: "Bonjour {name}, arrivée à {destination} dans environ {remainingTime}. Référence {ticketId}.",
	},
}
