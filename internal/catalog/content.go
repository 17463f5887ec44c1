package catalog

import "github.com/expobetonrdc/expo-bot/internal/language"

// Topic keys used by the router
const (
	KeyHowAreYou               = "how_are_you"
	KeyGreeting                = "greeting"
	KeyGreetingNamed           = "greeting_named"
	KeyGreetingSuggestions     = "greeting_suggestions"
	KeyThankYou                = "thank_you"
	KeyRegistration            = "registration"
	KeyGoodbye                 = "goodbye"
	KeyAmbassador              = "ambassador"
	KeyAmbassadorSuggestions   = "ambassador_suggestions"
	KeyFounder                 = "founder"
	KeyFounderSuggestions      = "founder_suggestions"
	KeyVicePresident           = "vice_president"
	KeyVicePresidentSuggestion = "vice_president_suggestions"
	KeyWhatIsExpoBeton         = "what_is_expobeton"
	KeyGrandKatanga            = "grand_katanga"
	KeyDates                   = "dates"
	KeyLocation                = "location"
	KeyDuration                = "duration"
	KeyWhyLubumbashi           = "why_lubumbashi"
	KeyCities                  = "cities"
	KeyKolwezi                 = "kolwezi"
	KeyKalemie                 = "kalemie"
	KeyKamoa                   = "kamoa"
	KeyPresidentialSpeech      = "presidential_speech"
	KeyTheme                   = "theme"
	KeyThemeSuggestions        = "theme_suggestions"
	KeyFallback                = "fallback"
	KeyFeedbackPrompt          = "feedback_prompt"
	KeyFeedbackThumbsUp        = "feedback_thumbs_up"
	KeyFeedbackThumbsDown      = "feedback_thumbs_down"
	KeyFeedbackPositive        = "feedback_positive"
	KeyFeedbackNegative        = "feedback_negative"
	KeyConversationEnded       = "conversation_ended"
)

const (
	fr = language.French
	en = language.English
	zh = language.Chinese
	ru = language.Russian
	es = language.Spanish
	ar = language.Arabic
)

// Default returns the ExpoBeton RDC catalog.
func Default() *Catalog {
	return New(defaultEntries)
}

var defaultEntries = Entries{
	KeyHowAreYou: {
		fr: "Je vais très bien, merci de demander! 😊 Et vous, comment allez-vous? Que souhaitez-vous savoir sur ExpoBeton RDC?",
		en: "I'm doing great, thanks for asking! 😊 And you, how are you? What would you like to know about ExpoBeton RDC?",
		zh: "我很好，谢谢关心！😊 您呢，您好吗？您想了解关于ExpoBeton RDC的什么信息？",
		ru: "У меня все отлично, спасибо, что спросили! 😊 А у вас как дела? Что вы хотите узнать о ExpoBeton RDC?",
		es: "¡Estoy muy bien, gracias por preguntar! 😊 ¿Y usted, cómo está? ¿Qué le gustaría saber sobre ExpoBeton RDC?",
		ar: "أنا بخير، شكراً لسؤالك! 😊 وأنت، كيف حالك؟ ماذا تريد أن تعرف عن ExpoBeton RDC؟",
	},
	KeyGreeting: {
		fr: "Bonjour! 😊 Je suis ravi de vous aider. Comment puis-je vous renseigner sur ExpoBeton RDC aujourd'hui?",
		en: "Hello! 😊 I'm delighted to help you. How can I assist you with ExpoBeton RDC today?",
		zh: "您好！我很高兴为您提供帮助。我能为您提供有关ExpoBeton RDC的哪些信息？",
		ru: "Здравствуйте! Рад помочь вам. Как я могу помочь вам с ExpoBeton RDC сегодня?",
		es: "¡Hola! Estoy encantado de ayudarle. ¿Cómo puedo ayudarle con ExpoBeton RDC hoy?",
		ar: "مرحباً! يسعدني مساعدتك. كيف يمكنني مساعدتك بخصوص ExpoBeton RDC اليوم؟",
	},
	// Personalized greetings only exist in French and English.
	KeyGreetingNamed: {
		fr: "Bonjour %s! 😊 Enchanté de faire votre connaissance! Comment allez-vous? Qu'aimeriez-vous savoir sur ExpoBeton RDC?",
		en: "Hello %s! 😊 Nice to meet you! How are you doing? What would you like to know about ExpoBeton RDC?",
	},
	KeyGreetingSuggestions: {
		fr: "\n💡 Vous pourriez me demander:\n• C'est quoi ExpoBeton?\n• Quelles sont les dates?\n• Comment devenir ambassadeur?",
		en: "\n💡 You could ask me:\n• What is ExpoBeton?\n• What are the dates?\n• How to become an ambassador?",
		zh: "\n💡 您可以问我：\n• 什么是ExpoBeton？\n• 日期是什么时候？\n• 如何成为大使？",
		ru: "\n💡 Вы можете спросить меня:\n• Что такое ExpoBeton?\n• Какие даты?\n• Как стать послом?",
		es: "\n💡 Podría preguntarme:\n• ¿Qué es ExpoBeton?\n• ¿Cuáles son las fechas?\n• ¿Cómo convertirse en embajador?",
		ar: "\n💡 يمكنك أن تسألني:\n• ما هو ExpoBeton؟\n• ما هي التواريخ؟\n• كيف تصبح سفيرا؟",
	},
	KeyThankYou: {
		fr: "De rien! C'est avec plaisir! 😊\n\nSi vous avez d'autres questions sur ExpoBeton RDC, n'hésitez pas à me demander!",
		en: "You're welcome! My pleasure! 😊\n\nIf you have any other questions about ExpoBeton RDC, don't hesitate to ask!",
		zh: "不客气！很高兴为您服务！😊\n\n如果您对ExpoBeton RDC有任何其他问题，请随时提问！",
		ru: "Пожалуйста! С удовольствием! 😊\n\nЕсли у вас есть другие вопросы о ExpoBeton RDC, не стесняйтесь спрашивать!",
		es: "¡De nada! ¡Un placer! 😊\n\nSi tiene otras preguntas sobre ExpoBeton RDC, ¡no dude en preguntar!",
		ar: "على الرحب والسعة! بكل سرور! 😊\n\nإذا كان لديك أي أسئلة أخرى حول ExpoBeton RDC، لا تتردد في السؤال!",
	},
	KeyRegistration: {
		fr: "Pour participer à ExpoBeton RDC, inscrivez-vous en ligne sur https://expobetonrdc.com/#tg_register.\n\n💡 Vous pourriez aussi demander :\n• Quelles sont les dates ?\n• Comment devenir ambassadeur ?\n• Quel est le thème ?",
		en: "To participate in ExpoBeton RDC, register online at https://expobetonrdc.com/#tg_register.\n\n💡 You might also ask:\n• What are the dates?\n• How to become an ambassador?\n• What is the theme?",
		zh: "要参加ExpoBeton RDC，请在https://expobetonrdc.com/#tg_register在线注册。\n\n💡 您还可以问：\n• 日期是什么时候？\n• 如何成为大使？\n• 主题是什么？",
		ru: "Чтобы принять участие в ExpoBeton RDC, зарегистрируйтесь онлайн на https://expobetonrdc.com/#tg_register.\n\n💡 Вы также можете спросить:\n• Какие даты?\n• Как стать послом?\n• Какая тема?",
		es: "Para participar en ExpoBeton RDC, regístrese en línea en https://expobetonrdc.com/#tg_register.\n\n💡 También podría preguntar:\n• ¿Cuáles son las fechas?\n• ¿Cómo convertirse en embajador?\n• ¿Cuál es el tema?",
		ar: "للمشاركة في ExpoBeton RDC، سجل عبر الإنترنت على https://expobetonrdc.com/#tg_register.\n\n💡 قد تسأل أيضاً:\n• ما هي التواريخ؟\n• كيف تصبح سفيراً؟\n• ما هو الموضوع؟",
	},
	KeyGoodbye: {
		fr: "Au revoir! Merci d'avoir utilisé notre chatbot ExpoBeton RDC! 👋\n\nÀ très bientôt! N'hésitez pas à revenir si vous avez d'autres questions.",
		en: "Goodbye! Thank you for using our ExpoBeton RDC chatbot! 👋\n\nSee you soon! Don't hesitate to come back if you have other questions.",
		zh: "再见！感谢您使用我们的ExpoBeton RDC聊天机器人！👋\n\n很快见！如果您有其他问题，请随时回来。",
		ru: "До свидания! Спасибо за использование нашего чат-бота ExpoBeton RDC! 👋\n\nДо скорой встречи! Не стесняйтесь вернуться, если у вас есть другие вопросы.",
		es: "¡Adiós! ¡Gracias por usar nuestro chatbot ExpoBeton RDC! 👋\n\n¡Hasta pronto! No dude en volver si tiene otras preguntas.",
		ar: "وداعاً! شكراً لاستخدامك روبوت الدردشة ExpoBeton RDC! 👋\n\nإلى اللقاء قريباً! لا تتردد في العودة إذا كان لديك أسئلة أخرى.",
	},
	// Ambassador answers are only written in French and English; every other
	// language falls back to French.
	KeyAmbassador: {
		fr: "Pour devenir Ambassadeur d'Expo Béton RDC :\n\n✅ L'adhésion se fait sur sélection\n✅ Postulez en ligne sur https://expobetonrdc.com/\n\nProfils recherchés :\n• Experts techniques et scientifiques\n• Leaders d'opinion et influenceurs\n• Professionnels du BTP\n• Entrepreneurs innovants\n• Universitaires et chercheurs\n\nEn tant qu'Ambassadeur, vous participez aux Think Tanks thématiques, contribuez aux politiques de reconstruction, et bénéficiez d'un réseau d'influence national et international.",
		en: "To become an ExpoBeton RDC Ambassador:\n\n✅ Membership is by selection\n✅ Apply online at https://expobetonrdc.com/\n\nProfiles sought:\n• Technical and scientific experts\n• Opinion leaders and influencers\n• Construction professionals\n• Innovative entrepreneurs\n• Academics and researchers\n\nAs an Ambassador, you participate in thematic Think Tanks, contribute to reconstruction policies, and benefit from a national and international network of influence.",
	},
	KeyAmbassadorSuggestions: {
		fr: "\n💡 Vous pourriez aussi me demander :\n• C'est quoi ExpoBeton ?\n• Quelles sont les dates de l'événement ?\n• Qui sont les fondateurs ?",
		en: "\n💡 You might also ask:\n• What is ExpoBeton?\n• What are the event dates?\n• Who are the founders?",
	},
	KeyFounder: {
		fr: "Jean Bamanisa Saïdi est le président, promoteur, créateur et fondateur d'ExpoBeton RDC. C'est un homme d'affaires et personnalité politique congolaise, ancien gouverneur de la province de l'Ituri. Il porte la vision stratégique de l'événement et met en avant la reconstruction, l'urbanisation et le développement durable de la RDC.",
	},
	KeyFounderSuggestions: {
		fr: "\n💡 Vous pourriez aussi demander :\n• Qui est le vice-président ?\n• Comment devenir ambassadeur ?\n• Quelles sont les dates de l'événement ?",
	},
	KeyVicePresident: {
		fr: "Momo Sungunza est le vice-président d'ExpoBeton RDC. Il assure la coordination opérationnelle et organisationnelle du forum, et travaille en tandem avec Jean Bamanisa pour mobiliser les partenaires publics et privés.",
	},
	KeyVicePresidentSuggestion: {
		fr: "\n💡 Vous pourriez aussi demander :\n• Qui est le fondateur ?\n• C'est quoi le thème de l'édition 2026 ?\n• Comment participer ?",
	},
	KeyWhatIsExpoBeton: {
		fr: "ExpoBeton RDC est le salon international de la construction, des infrastructures et du développement urbain en République Démocratique du Congo. C'est un forum annuel qui crée un espace de réflexion et de partenariat pour rebâtir les villes congolaises et soutenir la croissance économique.",
		en: "ExpoBeton RDC is the international construction, infrastructure and urban development fair in the Democratic Republic of Congo. It's an annual forum that creates a space for reflection and partnership to rebuild Congolese cities and support economic growth.",
		zh: "ExpoBeton RDC是刚果民主共和国的国际建筑、基础设施和城市发展博览会。这是一个年度论坛,为重建刚果城市和支持经济增长创造了一个反思和伙伴关系的空间。",
		ru: "ExpoBeton RDC - это международная выставка строительства, инфраструктуры и городского развития в Демократической Республике Конго. Это ежегодный форум, который создает пространство для размышлений и партнерства по восстановлению конголезских городов и поддержке экономического роста.",
		es: "ExpoBeton RDC es la feria internacional de construcción, infraestructura y desarrollo urbano en la República Democrática del Congo. Es un foro anual que crea un espacio de reflexión y asociación para reconstruir las ciudades congoleñas y apoyar el crecimiento económico.",
		ar: "ExpoBeton RDC هو المعرض الدولي للبناء والبنية التحتية والتنمية الحضرية في جمهورية الكونغو الديمقراطية. إنه منتدى سنوي يخلق مساحة للتفكير والشراكة لإعادة بناء المدن الكونغولية ودعم النمو الاقتصادي.",
	},
	KeyGrandKatanga: {
		fr: "Le Grand Katanga est une région stratégique de la RDC comprenant trois provinces : Haut-Katanga (capitale Lubumbashi), Lualaba (capitale Kolwezi) et Tanganyika (capitale Kalemie). Cette région représente 70% des exportations nationales grâce à ses réserves massives de cobalt et cuivre. ExpoBeton 2026 se concentre sur cette région comme carrefour stratégique au cœur des corridors africains du Sud, de l'Ouest et de l'Est.",
		en: "Grand Katanga is a strategic region of the DRC comprising three provinces: Haut-Katanga (capital Lubumbashi), Lualaba (capital Kolwezi) and Tanganyika (capital Kalemie). This region represents 70% of national exports thanks to its massive reserves of cobalt and copper. ExpoBeton 2026 focuses on this region as a strategic hub at the heart of African corridors from the South, West and East.",
	},
	KeyDates: {
		fr: "La prochaine édition (11ème) d'ExpoBeton RDC aura lieu du 30 avril au 1er mai 2026 à Lubumbashi, au Nouveau Bâtiment de l'Assemblée Provinciale du Haut-Katanga.",
		en: "The next edition (11th) of ExpoBeton RDC will take place from April 30 to May 1, 2026 in Lubumbashi, at the New Building of the Provincial Assembly of Haut-Katanga.",
		zh: "ExpoBeton RDC下一届（第11届）将于2026年4月30日至5月1日在卢本巴希上加丹加省议会新大楼举行。",
		ru: "Следующее издание (11-е) ExpoBeton RDC состоится с 30 апреля по 1 мая 2026 года в Лубумбаши, в новом здании Провинциальной ассамблеи Верхней Катанги.",
		es: "La próxima edición (11ª) de ExpoBeton RDC tendrá lugar del 30 de abril al 1 de mayo de 2026 en Lubumbashi, en el Nuevo Edificio de la Asamblea Provincial de Haut-Katanga.",
		ar: "ستقام النسخة القادمة (الحادية عشرة) من ExpoBeton RDC من 30 أبريل إلى 1 مايو 2026 في لوبومباشي، في المبنى الجديد للجمعية الإقليمية لهوت-كاتانغا.",
	},
	KeyLocation: {
		fr: "La prochaine édition d'ExpoBeton RDC se tiendra à Lubumbashi, Haut-Katanga, au Nouveau Bâtiment de l'Assemblée Provinciale.",
		en: "The next edition of ExpoBeton RDC will be held in Lubumbashi, Haut-Katanga, at the New Building of the Provincial Assembly.",
		zh: "ExpoBeton RDC下一届将在上加丹加卢本巴希省议会新大楼举行。",
		ru: "Следующее издание ExpoBeton RDC будет проходить в Лубумбаши, Верхняя Катанга, в новом здании Провинциальной ассамблеи.",
		es: "La próxima edición de ExpoBeton RDC se celebrará en Lubumbashi, Haut-Katanga, en el Nuevo Edificio de la Asamblea Provincial.",
		ar: "ستقام النسخة القادمة من ExpoBeton RDC في لوبومباشي، هوت-كاتانغا، في المبنى الجديد للجمعية الإقليمية.",
	},
	KeyDuration: {
		fr: "L'événement ExpoBeton RDC 2026 durera 2 jours : du 30 avril au 1er mai 2026.",
	},
	KeyWhyLubumbashi: {
		fr: "ExpoBeton 2026 se tiendra à Lubumbashi car cette édition se concentre sur le Grand Katanga comme carrefour stratégique. Lubumbashi, capitale du Haut-Katanga, est au cœur des corridors africains du Sud, de l'Ouest et de l'Est, avec un potentiel énorme en matière d'infrastructures et de développement économique grâce aux réserves massives de cobalt et cuivre de la région.",
	},
	KeyCities: {
		fr: "Les trois villes principales du Grand Katanga sont :\n\n1️⃣ **Lubumbashi** (capitale du Haut-Katanga) - centre économique et industriel\n2️⃣ **Kolwezi** (capitale du Lualaba) - capitale mondiale du cobalt\n3️⃣ **Kalemie** (capitale du Tanganyika) - port stratégique sur le lac Tanganyika\n\nCes trois villes sont les piliers du développement régional au cœur d'ExpoBeton 2026.",
	},
	KeyKolwezi: {
		fr: "Kolwezi est la capitale de la province du Lualaba et l'une des trois villes clés du Grand Katanga. Elle est connue comme la **capitale mondiale du cobalt** grâce à ses réserves immenses. Kolwezi joue un rôle stratégique dans l'industrie minière de la RDC et est un pilier majeur du développement économique de la région, au cœur du thème d'ExpoBeton 2026.",
	},
	KeyKalemie: {
		fr: "Kalemie est la capitale de la province du Tanganyika et l'une des trois villes clés du Grand Katanga. C'est un **port stratégique** sur le lac Tanganyika, reliant la RDC aux corridors africains de l'Est. Kalemie est essentielle pour le transport et le commerce régional, faisant partie intégrante du thème d'ExpoBeton 2026 : 'Grand Katanga : Carrefour Stratégique'.",
	},
	KeyKamoa: {
		fr: "KAMOA-KAKULA est l'un des plus grands projets de cuivre au monde, situé dans la province du Lualaba (Grand Katanga). Développé par Ivanhoe Mines, ce projet a été présenté lors d'ExpoBeton comme un exemple majeur du potentiel minier de la région. KAMOA contribue significativement aux 70% des exportations nationales que représente le Grand Katanga.",
	},
	KeyPresidentialSpeech: {
		fr: "Lors de l'ouverture d'ExpoBeton 2024 (8ème édition), le Président Félix Tshisekedi a souligné plusieurs points clés :\n\n🏆 **Thème 2024:** 'Révolution urbaine et solutions durables du corridor ouest pour Kinshasa et Kongo-Central'\n\n🛣️ **3 Engagements majeurs:**\n1️⃣ Création d'un **ministère dédié à la politique de la ville**\n2️⃣ **Désenclavement des territoires** comme priorité absolue (initiative présidentielle)\n3️⃣ **Partenariats publics-privés** pour les infrastructures\n\n🏛️ **Vision:** Faire du secteur de la construction un **levier majeur de transformation économique**, garantir l'égalité d'accès aux services de base pour tous les Congolais.\n\nLe Président a déclaré : 'La question du désenclavement de nos territoires est une priorité absolue pour moi, car elle touche directement à l'égalité des chances pour tous.'",
	},
	KeyTheme: {
		fr: "Le thème de l'édition 2026 (11ème) est : 'Grand Katanga : Carrefour Stratégique au cœur des corridors africains du Sud, de l'Ouest et de l'Est'. Cette édition se concentre sur Lubumbashi, Kalemie et Kolwezi comme piliers du développement régional.",
	},
	KeyThemeSuggestions: {
		fr: "\n💡 Vous pourriez aussi demander :\n• Qui sont les fondateurs ?\n• Comment devenir ambassadeur ?\n• Où se déroule l'événement ?",
	},
	KeyFallback: {
		fr: "Concernant cette question, je ne peux pas vous fournir de réponse pour le moment. Je vous suggère de contacter notre équipe par email à info@expobetonrdc.com.\n\n💡 Voici ce que je peux vous renseigner :\n• L'événement ExpoBeton\n• Les dates et le lieu\n• Le thème\n• Les fondateurs\n• Comment participer\n• Devenir ambassadeur",
		en: "Regarding this question, I cannot provide an answer at the moment. I suggest you contact our team by email at info@expobetonrdc.com.\n\n💡 Here's what I can help you with:\n• The ExpoBeton event\n• Dates and location\n• The theme\n• The founders\n• How to participate\n• Becoming an ambassador",
		zh: "关于这个问题，我暂时无法提供答案。我建议您通过电子邮件info@expobetonrdc.com联系我们的团队。\n\n💡 以下是我可以为您提供信息的内容：\n• ExpoBeton活动\n• 日期和地点\n• 主题\n• 创始人\n• 如何参加\n• 成为大使",
		ru: "Относительно этого вопроса я не могу дать ответ в данный момент. Я предлагаю вам связаться с нашей командой по электронной почте info@expobetonrdc.com.\n\n💡 Вот с чем я могу вам помочь:\n• Мероприятие ExpoBeton\n• Даты и местоположение\n• Тема\n• Основатели\n• Как принять участие\n• Стать послом",
		es: "Con respecto a esta pregunta, no puedo proporcionar una respuesta en este momento. Le sugiero que se ponga en contacto con nuestro equipo por correo electrónico a info@expobetonrdc.com.\n\n💡 Esto es lo que puedo ayudarle:\n• El evento ExpoBeton\n• Fechas y ubicación\n• El tema\n• Los fundadores\n• Cómo participar\n• Convertirse en embajador",
		ar: "فيما يتعلق بهذا السؤال، لا يمكنني تقديم إجابة في الوقت الحالي. أقترح عليك الاتصال بفريقنا عبر البريد الإلكتروني info@expobetonrdc.com.\n\n💡 إليك ما يمكنني مساعدتك به:\n• حدث ExpoBeton\n• التواريخ والموقع\n• الموضوع\n• المؤسسون\n• كيفية المشاركة\n• أن تصبح سفيراً",
	},
	KeyFeedbackPrompt: {
		fr: "Nous aimerions connaître votre avis! Comment trouvez-vous notre service?",
		en: "We'd love to hear your feedback! How would you rate our service?",
		zh: "我们很想听到您的反馈！您如何评价我们的服务？",
		ru: "Мы бы хотели услышать ваше мнение! Как вы оцениваете наш сервис?",
		es: "¡Nos encantaría conocer tu opinión! ¿Cómo calificarías nuestro servicio?",
		ar: "نود أن نسمع رأيك! كيف تقيّم خدمتنا؟",
	},
	KeyFeedbackThumbsUp: {
		fr: "👍 Excellent",
		en: "👍 Excellent",
		zh: "👍 非常好",
		ru: "👍 Отлично",
		es: "👍 Excelente",
		ar: "👍 ممتاز",
	},
	KeyFeedbackThumbsDown: {
		fr: "👎 Peut être amélioré",
		en: "👎 Could be better",
		zh: "👎 可以更好",
		ru: "👎 Можно лучше",
		es: "👎 Podría mejorar",
		ar: "👎 يمكن أن يكون أفضل",
	},
	KeyFeedbackPositive: {
		fr: "C'est merveilleux à entendre! Merci d'avoir pris le temps de nous donner votre avis. 🌟",
		en: "That's wonderful to hear! Thank you for taking the time to share your feedback. 🌟",
		zh: "真好！感谢您花时间分享您的反馈。🌟",
		ru: "Замечательно! Спасибо, что нашли время поделиться своим мнением. 🌟",
		es: "¡Qué maravilloso escuchar eso! Gracias por tomarse el tiempo de compartir sus comentarios. 🌟",
		ar: "هذا رائع! شكراً لك على أخذ الوقت لمشاركة رأيك. 🌟",
	},
	KeyFeedbackNegative: {
		fr: "Nous apprécions que vous ayez pris le temps de nous donner votre avis. Nous travaillons toujours à améliorer notre service.",
		en: "We appreciate you taking the time to share your feedback. We're always working to improve our service.",
		zh: "感谢您花时间分享您的反馈。我们一直在努力改进我们的服务。",
		ru: "Мы ценим, что вы нашли время поделиться своим мнением. Мы постоянно работаем над улучшением нашего сервиса.",
		es: "Agradecemos que se haya tomado el tiempo de compartir sus comentarios. Siempre estamos trabajando para mejorar nuestro servicio.",
		ar: "نحن نقدر أخذك الوقت لمشاركة رأيك. نحن نعمل دائماً على تحسين خدمتنا.",
	},
	KeyConversationEnded: {
		fr: "👋 Merci pour votre visite! La conversation a été enregistrée.",
	},
}
