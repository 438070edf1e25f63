package companies

// Catalog returns the built-in universe of listed MENA companies, used
// to seed the catalog database on startup.
func Catalog() []Company {
	return []Company{
		// Saudi Arabia
		{Ticker: "1120.SR", Name: "Al Rajhi Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1180.SR", Name: "Saudi National Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1010.SR", Name: "Riyad Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1140.SR", Name: "Saudi Awwal Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1150.SR", Name: "Alinma Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1020.SR", Name: "Bank AlJazira", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1080.SR", Name: "Arab National Bank", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "1050.SR", Name: "Banque Saudi Fransi", Country: "Saudi Arabia", Sector: "Banking"},
		{Ticker: "8200.SR", Name: "Saudi Re", Country: "Saudi Arabia", Sector: "Insurance"},
		{Ticker: "8010.SR", Name: "Tawuniya", Country: "Saudi Arabia", Sector: "Insurance"},
		{Ticker: "8210.SR", Name: "Bupa Arabia", Country: "Saudi Arabia", Sector: "Insurance"},
		{Ticker: "8030.SR", Name: "Medgulf", Country: "Saudi Arabia", Sector: "Insurance"},
		{Ticker: "8250.SR", Name: "Walaa Insurance", Country: "Saudi Arabia", Sector: "Insurance"},
		{Ticker: "2222.SR", Name: "Saudi Aramco", Country: "Saudi Arabia", Sector: "Energy"},
		{Ticker: "2010.SR", Name: "SABIC", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "5110.SR", Name: "Saudi Electricity", Country: "Saudi Arabia", Sector: "Utilities"},
		{Ticker: "2082.SR", Name: "ACWA Power", Country: "Saudi Arabia", Sector: "Utilities"},
		{Ticker: "2350.SR", Name: "Saudi Kayan", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2290.SR", Name: "Yanbu Petrochemical", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2330.SR", Name: "Advanced Petrochemical", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2380.SR", Name: "Petro Rabigh", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2250.SR", Name: "SIIG", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2060.SR", Name: "Tasnee", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2310.SR", Name: "Saudi International Petrochemical", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2210.SR", Name: "Nama Chemicals", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2001.SR", Name: "Methanol Chemicals", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "2370.SR", Name: "Saudi Aramco Base Oil", Country: "Saudi Arabia", Sector: "Petrochemicals"},
		{Ticker: "1211.SR", Name: "Maaden", Country: "Saudi Arabia", Sector: "Mining"},
		{Ticker: "1320.SR", Name: "Saudi Steel Pipe", Country: "Saudi Arabia", Sector: "Industrial"},
		{Ticker: "2100.SR", Name: "Filling & Packing", Country: "Saudi Arabia", Sector: "Industrial"},
		{Ticker: "2300.SR", Name: "Saudi Paper", Country: "Saudi Arabia", Sector: "Industrial"},
		{Ticker: "7010.SR", Name: "Saudi Telecom (STC)", Country: "Saudi Arabia", Sector: "Telecom"},
		{Ticker: "7020.SR", Name: "Mobily", Country: "Saudi Arabia", Sector: "Telecom"},
		{Ticker: "7030.SR", Name: "Zain Saudi", Country: "Saudi Arabia", Sector: "Telecom"},
		{Ticker: "7040.SR", Name: "Atheeb Telecom", Country: "Saudi Arabia", Sector: "Telecom"},
		{Ticker: "2280.SR", Name: "Almarai", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "2050.SR", Name: "Savola Group", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "6002.SR", Name: "Herfy Food", Country: "Saudi Arabia", Sector: "Food Services"},
		{Ticker: "6010.SR", Name: "Nadec", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "4061.SR", Name: "Anaam Holding", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "6060.SR", Name: "Tanmiah Food", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "6001.SR", Name: "Halwani Bros", Country: "Saudi Arabia", Sector: "Food & Beverages"},
		{Ticker: "4190.SR", Name: "Jarir Marketing", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4003.SR", Name: "Extra Stores", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4240.SR", Name: "Fawaz Alhokair", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4001.SR", Name: "Al Othaim Markets", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4321.SR", Name: "Arabian Centres", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4161.SR", Name: "Bindawood Holding", Country: "Saudi Arabia", Sector: "Retail"},
		{Ticker: "4002.SR", Name: "Mouwasat Medical", Country: "Saudi Arabia", Sector: "Healthcare"},
		{Ticker: "4004.SR", Name: "Dallah Healthcare", Country: "Saudi Arabia", Sector: "Healthcare"},
		{Ticker: "4013.SR", Name: "Dr Sulaiman Al Habib", Country: "Saudi Arabia", Sector: "Healthcare"},
		{Ticker: "4164.SR", Name: "Nahdi Medical", Country: "Saudi Arabia", Sector: "Healthcare"},
		{Ticker: "4320.SR", Name: "Dar Al Arkan", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "4220.SR", Name: "Emaar Economic City", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "4250.SR", Name: "Jabal Omar", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "4322.SR", Name: "Retal Urban", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "4090.SR", Name: "Taiba Holding", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "4020.SR", Name: "Saudi Real Estate", Country: "Saudi Arabia", Sector: "Real Estate"},
		{Ticker: "3020.SR", Name: "Saudi Cement", Country: "Saudi Arabia", Sector: "Cement"},
		{Ticker: "3030.SR", Name: "Yamama Cement", Country: "Saudi Arabia", Sector: "Cement"},
		{Ticker: "3040.SR", Name: "Qassim Cement", Country: "Saudi Arabia", Sector: "Cement"},
		{Ticker: "3060.SR", Name: "Yanbu Cement", Country: "Saudi Arabia", Sector: "Cement"},
		{Ticker: "4146.SR", Name: "Saudi Oger", Country: "Saudi Arabia", Sector: "Construction"},
		{Ticker: "1212.SR", Name: "Astra Industrial", Country: "Saudi Arabia", Sector: "Construction"},
		{Ticker: "4030.SR", Name: "Bahri", Country: "Saudi Arabia", Sector: "Transportation"},
		{Ticker: "6004.SR", Name: "Saudi Airlines Catering", Country: "Saudi Arabia", Sector: "Services"},
		{Ticker: "4031.SR", Name: "SAPTCO", Country: "Saudi Arabia", Sector: "Transportation"},

		// Qatar
		{Ticker: "QNBK.QA", Name: "Qatar National Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "QIBK.QA", Name: "Qatar Islamic Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "CBQK.QA", Name: "Commercial Bank Qatar", Country: "Qatar", Sector: "Banking"},
		{Ticker: "DHBK.QA", Name: "Doha Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "MARK.QA", Name: "Masraf Al Rayan", Country: "Qatar", Sector: "Banking"},
		{Ticker: "QIIK.QA", Name: "Qatar International Islamic Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "ABQK.QA", Name: "Ahli Bank", Country: "Qatar", Sector: "Banking"},
		{Ticker: "QATI.QA", Name: "Qatar Insurance", Country: "Qatar", Sector: "Insurance"},
		{Ticker: "QGRI.QA", Name: "Qatar General Insurance", Country: "Qatar", Sector: "Insurance"},
		{Ticker: "IQCD.QA", Name: "Industries Qatar", Country: "Qatar", Sector: "Industrial"},
		{Ticker: "QFLS.QA", Name: "Qatar Fuel (Woqod)", Country: "Qatar", Sector: "Energy"},
		{Ticker: "QGTS.QA", Name: "Nakilat", Country: "Qatar", Sector: "Transportation"},
		{Ticker: "QEWS.QA", Name: "Qatar Electricity & Water", Country: "Qatar", Sector: "Utilities"},
		{Ticker: "QAMC.QA", Name: "Qatar Aluminum", Country: "Qatar", Sector: "Industrial"},
		{Ticker: "GISS.QA", Name: "Gulf International Services", Country: "Qatar", Sector: "Industrial"},
		{Ticker: "ORDS.QA", Name: "Ooredoo", Country: "Qatar", Sector: "Telecom"},
		{Ticker: "VFQS.QA", Name: "Vodafone Qatar", Country: "Qatar", Sector: "Telecom"},
		{Ticker: "BRES.QA", Name: "Barwa Real Estate", Country: "Qatar", Sector: "Real Estate"},
		{Ticker: "ERES.QA", Name: "Ezdan Holding", Country: "Qatar", Sector: "Real Estate"},
		{Ticker: "UDCD.QA", Name: "UDC", Country: "Qatar", Sector: "Real Estate"},
		{Ticker: "QIGD.QA", Name: "Qatari Investors Group", Country: "Qatar", Sector: "Real Estate"},
		{Ticker: "WDAM.QA", Name: "Widam Food", Country: "Qatar", Sector: "Food & Beverages"},
		{Ticker: "SIIS.QA", Name: "Salam International", Country: "Qatar", Sector: "Services"},

		// Kuwait
		{Ticker: "NBK.KW", Name: "National Bank of Kuwait", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "BOUBYAN.KW", Name: "Boubyan Bank", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "GBK.KW", Name: "Gulf Bank", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "BURG.KW", Name: "Burgan Bank", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "CBK.KW", Name: "Commercial Bank Kuwait", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "KIB.KW", Name: "Kuwait International Bank", Country: "Kuwait", Sector: "Banking"},
		{Ticker: "KPROJ.KW", Name: "Kuwait Projects Company (KIPCO)", Country: "Kuwait", Sector: "Investment"},
		{Ticker: "ZAIN.KW", Name: "Zain Kuwait", Country: "Kuwait", Sector: "Telecom"},
		{Ticker: "OOREDOO.KW", Name: "Ooredoo Kuwait", Country: "Kuwait", Sector: "Telecom"},
		{Ticker: "STC.KW", Name: "STC Kuwait", Country: "Kuwait", Sector: "Telecom"},
		{Ticker: "FOOD.KW", Name: "Americana Group", Country: "Kuwait", Sector: "Food & Beverages"},
		{Ticker: "NIND.KW", Name: "National Industries Group", Country: "Kuwait", Sector: "Industrial"},
		{Ticker: "KCEM.KW", Name: "Kuwait Cement", Country: "Kuwait", Sector: "Construction Materials"},
		{Ticker: "KRE.KW", Name: "Kuwait Real Estate", Country: "Kuwait", Sector: "Real Estate"},
		{Ticker: "SOKOUK.KW", Name: "Sokouk Holding", Country: "Kuwait", Sector: "Real Estate"},

		// Egypt
		{Ticker: "COMI.CA", Name: "Commercial International Bank", Country: "Egypt", Sector: "Banking"},
		{Ticker: "ADIB.CA", Name: "Abu Dhabi Islamic Bank Egypt", Country: "Egypt", Sector: "Banking"},
		{Ticker: "CIEB.CA", Name: "Credit Agricole Egypt", Country: "Egypt", Sector: "Banking"},
		{Ticker: "EGBE.CA", Name: "Egyptian Gulf Bank", Country: "Egypt", Sector: "Banking"},
		{Ticker: "ETEL.CA", Name: "Telecom Egypt", Country: "Egypt", Sector: "Telecom"},
		{Ticker: "EAST.CA", Name: "Eastern Company", Country: "Egypt", Sector: "Consumer Goods"},
		{Ticker: "JUFO.CA", Name: "Juhayna Food", Country: "Egypt", Sector: "Food & Beverages"},
		{Ticker: "EFID.CA", Name: "Edita Food", Country: "Egypt", Sector: "Food & Beverages"},
		{Ticker: "DOMT.CA", Name: "Arabian Food Industries (Domty)", Country: "Egypt", Sector: "Food & Beverages"},
		{Ticker: "POUL.CA", Name: "Cairo Poultry", Country: "Egypt", Sector: "Food & Beverages"},
		{Ticker: "ISPH.CA", Name: "Ismailia Misr Poultry", Country: "Egypt", Sector: "Food & Beverages"},
		{Ticker: "ORWE.CA", Name: "Oriental Weavers", Country: "Egypt", Sector: "Manufacturing"},
		{Ticker: "ESRS.CA", Name: "Egyptian Iron & Steel", Country: "Egypt", Sector: "Manufacturing"},
		{Ticker: "TMGH.CA", Name: "Talaat Moustafa", Country: "Egypt", Sector: "Real Estate"},
		{Ticker: "PHDC.CA", Name: "Palm Hills", Country: "Egypt", Sector: "Real Estate"},
		{Ticker: "OCDI.CA", Name: "Sixth of October", Country: "Egypt", Sector: "Real Estate"},
		{Ticker: "ORAS.CA", Name: "Orascom Development", Country: "Egypt", Sector: "Real Estate"},
		{Ticker: "SUCE.CA", Name: "Suez Cement", Country: "Egypt", Sector: "Cement"},
		{Ticker: "ARCC.CA", Name: "Arabian Cement", Country: "Egypt", Sector: "Cement"},
		{Ticker: "SCEM.CA", Name: "Sinai Cement", Country: "Egypt", Sector: "Cement"},
		{Ticker: "AMOC.CA", Name: "Alexandria Mineral Oils (AMOC)", Country: "Egypt", Sector: "Petrochemicals"},
		{Ticker: "SKPC.CA", Name: "Sidi Kerir Petrochemicals", Country: "Egypt", Sector: "Petrochemicals"},
		{Ticker: "FWRY.CA", Name: "Fawry", Country: "Egypt", Sector: "Technology"},
		{Ticker: "EFIH.CA", Name: "e-finance", Country: "Egypt", Sector: "Technology"},
		{Ticker: "RAYA.CA", Name: "Raya Contact Center", Country: "Egypt", Sector: "Technology"},

		// Bahrain
		{Ticker: "NBB.BH", Name: "National Bank of Bahrain", Country: "Bahrain", Sector: "Banking"},
		{Ticker: "BBK.BH", Name: "BBK", Country: "Bahrain", Sector: "Banking"},
		{Ticker: "SALAM.BH", Name: "Al Salam Bank", Country: "Bahrain", Sector: "Banking"},
		{Ticker: "ITHMR.BH", Name: "Ithmaar Bank", Country: "Bahrain", Sector: "Banking"},
		{Ticker: "BISB.BH", Name: "Bahrain Islamic Bank", Country: "Bahrain", Sector: "Banking"},
		{Ticker: "INVCORP.BH", Name: "Investcorp", Country: "Bahrain", Sector: "Investment"},
		{Ticker: "GFH.BH", Name: "GFH Financial", Country: "Bahrain", Sector: "Investment"},
		{Ticker: "ALBH.BH", Name: "Aluminium Bahrain (Alba)", Country: "Bahrain", Sector: "Manufacturing"},
		{Ticker: "ZAINBH.BH", Name: "Zain Bahrain", Country: "Bahrain", Sector: "Telecom"},
		{Ticker: "SEEF.BH", Name: "Seef Properties", Country: "Bahrain", Sector: "Real Estate"},
		{Ticker: "DUTYF.BH", Name: "Bahrain Duty Free", Country: "Bahrain", Sector: "Retail"},
	}
}
