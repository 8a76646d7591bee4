package templates

// Arabic covers the most frequently dispatched events; the remaining keys
// fall back to the base language.
var arabicTemplates = map[string]Template{
	"received": {
		EventKey: "received",
		Language: "ar",
		Subject:  "تم استلام التذكرة {ticketId}",
		Text: "مرحباً {name}،\n\n" +
			"لقد استلمنا طلبك \"{title}\" وتم فتح التذكرة {ticketId}.\n" +
			"سيقوم فريق الدعم بمراجعته والرد عليك قريباً.\n\n" +
			"تم إنشاء هذا الإشعار بتاريخ {date}.",
		SMS: "مرحباً {name}، تم استلام طلبك وفتح التذكرة {ticketId}. سنوافيك بالمستجدات.",
	},
	"resolved": {
		EventKey: "resolved",
		Language: "ar",
		Subject:  "تم حل التذكرة {ticketId}",
		Text: "مرحباً {name}،\n\n" +
			"تم حل تذكرتك {ticketId} (\"{title}\").\n\n" +
			"ملاحظات الحل:\n{response}\n\n" +
			"إذا استمرت المشكلة، يرجى الرد وسيعاد فتح التذكرة.\n\n" +
			"تم إنشاء هذا الإشعار بتاريخ {date}.",
		SMS: "مرحباً {name}، تم حل التذكرة {ticketId}. إذا استمرت المشكلة يرجى الرد وسيعاد فتحها.",
	},
	"trip_started": {
		EventKey: "trip_started",
		Language: "ar",
		Subject:  "بدأت رحلتك إلى {destination}",
		Text: "مرحباً {name}،\n\n" +
			"رحلتك إلى {destination} جارية الآن (المرجع {ticketId}).\n" +
			"سنخبرك عند اقتراب الوصول.\n\n" +
			"تم إنشاء هذا الإشعار بتاريخ {date}.",
		SMS: "مرحباً {name}، بدأت رحلتك إلى {destination}. المرجع {ticketId}.",
	},
	"trip_remaining_time": {
		EventKey: "trip_remaining_time",
		Language: "ar",
		Subject:  "الوصول إلى {destination} خلال {remainingTime}",
		Text: "مرحباً {name}،\n\n" +
			"ستصل إلى {destination} خلال {remainingTime} تقريباً (المرجع {ticketId}).\n" +
			"يرجى الاستعداد للوصول.\n\n" +
			"تم إنشاء هذا الإشعار بتاريخ {date}.",
		SMS: "مرحباً {name}، الوصول إلى {destination} خلال {remainingTime} تقريباً. المرجع {ticketId}.",
	},
}
