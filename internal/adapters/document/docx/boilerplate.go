package docx

import "github.com/SscSPs/simcard_ledger/internal/core/domain"

// Placeholders in braces are replaced with the contract field of the same key.

const (
	headingText = "بسمه تعالی"

	sellerIdentityLine = "فروشنده: {seller_name}\tفرزند: {seller_child}\tشماره کد ملی: {seller_national_id}\tصادره از: {seller_issued}\tمتولد: {seller_birth}"
	sellerContactLine  = "تلفن: {seller_phone}\tنشانی: {seller_address}"
	buyerIdentityLine  = "{buyer_role}: {buyer_name}\tفرزند: {buyer_child}\tشماره کد ملی: {buyer_national_id}\tصادره از: {buyer_issued}\tمتولد: {buyer_birth}"
	buyerContactLine   = "تلفن: {buyer_phone}\tنشانی: {buyer_address}"

	subjectText = "مورد {deal}: کلیه حقوق عینه، متصوره و فرضیه متعلق به یک رشته سیم کارت تلفن همراه به شماره {sim_number} " +
		"اعم از حق الامتیاز و حق الاشتراک و ودیعه متعلقه احتمالی، به نحوی که دیگر هیچگونه حق و ادعایی برای فروشنده باقی نماند " +
		"و {buyer_role} قائم مقام قانونی فروشنده نزد اپراتور می باشد تا مطابق مقررات به نام و نفع خود استفاده نماید."

	priceText = "مبلغ مورد {deal}: {sale_amount} ریال معادل {sale_amount_toman} تومان که تماماً به اقرار تسلیم فروشنده گردیده است."

	saleTermsText = "با توجه به ماده 390 قانون مدنی در خصوص ضمان درک، فروشنده از معاملات پیش از مالکیت خود اطلاعی ندارد " +
		"و خریدار با آگاهی کامل عدم ضمان فروشنده نسبت به مستحق للغیر درآمدن مبیع را می پذیرد.\n" +
		"تاریخ و زمان تحویل سیم کارت به خریدار: {payment_date}\n" +
		"صورتحساب و آبونمان خط تا تاریخ {invoice_date} به مبلغ {invoice_amount} ریال توسط فروشنده پرداخت شده است.\n" +
		"مورد فروش صحیح و سالم به رویت خریدار رسیده و خریدار اقرار به دریافت و تصرف آن نموده است."

	settlementTermsText = "تاریخ و زمان تحویل سیم کارت به متصالح: {payment_date}\n" +
		"مفاد و شرایط:\n" +
		"1- مورد صلح صحیح و سالم به رویت متصالح رسیده و متصالح اقرار به دریافت و تصرف آن نموده است.\n" +
		"2- هزینه کلیه مکالمات تا زمان تنظیم صلحنامه به عهده مصالح و پس از آن به عهده متصالح است.\n" +
		"3- متصالح متعهد به همکاری و حضور در مراجع قانونی و قضایی در صورت لزوم می باشد.\n" +
		"4- مسئولیت هرگونه سوءاستفاده یا مزاحمت از زمان تنظیم صلحنامه به عهده متصالح است.\n" +
		"5- در صورت کشف فساد، مبلغ سیم کارت به متصالح عودت خواهد شد.\n" +
		"6- این صلحنامه با اسقاط کافه خیارات حتی خیار غبن تنظیم و بر اساس مواد 10، 190 و 362 قانون مدنی معتبر است."

	notesText      = "توضیحات: {notes}"
	signaturesText = "فروشنده\t\t{buyer_role}\t\tشاهد\t\tشاهد"
)

// paymentHeaders label the payment table columns in cell order.
var paymentHeaders = [5]string{"شرح واریز", "بانک", "مبلغ واریزی (ریال)", "نحوه پرداخت", "توضیحات"}

// kindWords are the role and deal words that differ between a sale and a settlement.
func kindWords(kind domain.ContractKind) (buyerRole, deal string) {
	if kind == domain.ContractPurchase {
		return "متصالح", "صلح"
	}
	return "خریدار", "فروش"
}

func termsFor(kind domain.ContractKind) string {
	if kind == domain.ContractPurchase {
		return settlementTermsText
	}
	return saleTermsText
}
